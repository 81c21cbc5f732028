package transport

// StartWizardRequest opens a new booking wizard session. Mode "single"
// requires a property id; mode "group" starts at the selection step.
type StartWizardRequest struct {
	Mode       string `json:"mode" validate:"required,oneof=single group"`
	PropertyID int64  `json:"propertyId,omitempty" validate:"omitempty,min=1"`
}

// WizardSelectRequest records the group selection.
type WizardSelectRequest struct {
	PropertyIDs []int64 `json:"propertyIds" validate:"required,min=1,dive,min=1"`
}

// WizardScheduleRequest records the viewing preferences.
type WizardScheduleRequest struct {
	ViewingFields
}

// WizardContactRequest records the submitter's contact details.
type WizardContactRequest struct {
	ContactFields
}
