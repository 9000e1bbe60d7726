package model

// FarmInput is the create/update payload for farms. OwnerID is only
// honored at create time for privileged callers; everybody else owns
// what they create.
type FarmInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	OwnerID  uint64 `json:"owner_id"`
}

type MotorInput struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type ValveInput struct {
	Name string `json:"name"`
	Open bool   `json:"open"`
}

// The patch variants carry pointers so that a partial body only
// touches the fields it names.

type FarmPatch struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type MotorPatch struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

type ValvePatch struct {
	Name *string `json:"name"`
	Open *bool   `json:"open"`
}
