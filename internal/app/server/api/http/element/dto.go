package element

import "passvault/internal/domain/element"

type addLoginInput struct {
	Body element.AddLoginRequest
}

type addCardInput struct {
	Body element.AddCardRequest
}

type addPersonalInfoInput struct {
	Body element.AddPersonalInfoRequest
}

type addNoteInput struct {
	Body element.AddNoteRequest
}

type addOutput struct {
	Body AddResponse
}

type AddResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
