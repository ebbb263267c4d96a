package service

// SlotValidationServiceWrapper defines middleware composition for SlotValidationService.
// Implementations wrap an existing SlotValidationService to add behavior such as
// logging or validating.
type SlotValidationServiceWrapper interface {
	Wrap(SlotValidationService) SlotValidationService // returns a decorated SlotValidationService applying additional behavior
}
