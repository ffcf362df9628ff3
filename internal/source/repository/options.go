package repository

type CreateSourceOptions struct {
	Name        string
	Type        string
	AccessToken string
}

type UpdateSourceOptions struct {
	ID          string
	Name        string
	AccessToken string
}

type ListSourcesOptions struct {
	ActiveOnly bool
}
