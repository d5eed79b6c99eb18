package model

// Category groups news posts. It has no owner.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryInput is the bound body of the add/edit category form.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}
