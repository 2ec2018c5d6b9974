package web

// DeleteButtonView holds data for the delete button template fragment
type DeleteButtonView struct {
	URL            string // hx-delete target, e.g. "/tasks/3"
	FallbackURL    string // plain form POST target when HTMX is absent
	ConfirmMessage string
}
