package source

type CreateInput struct {
	Name        string
	Type        string
	AccessToken string
}

type UpdateInput struct {
	ID          string
	Name        string
	AccessToken string
}
