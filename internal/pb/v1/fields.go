package v1

// Keys of the state struct returned by every carousel RPC.
const (
	FieldActiveIndex     = "active_index"
	FieldIsTransitioning = "is_transitioning"
	FieldTotal           = "total"
	FieldGeneration      = "generation"
	FieldOutcome         = "outcome"
	FieldChangedAt       = "changed_at"
	FieldSlide           = "slide"
)

// Keys of a slide struct.
const (
	SlideFieldID           = "id"
	SlideFieldTitle        = "title"
	SlideFieldSubtitle     = "subtitle"
	SlideFieldRationale    = "rationale"
	SlideFieldActionStep   = "action_step"
	SlideFieldExample      = "example"
	SlideFieldRevisionPlan = "revision_plan"
	SlideFieldColor        = "color"
	SlideFieldIcon         = "icon"
)
