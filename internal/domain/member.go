package domain

type Member struct {
	Email  string
	Handle string
	Row    int
}
