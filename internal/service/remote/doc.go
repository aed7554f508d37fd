// Package remote implements carousel-remote: one-shot navigation commands
// and a watch loop against a running carousel server.
package remote
