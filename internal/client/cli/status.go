package cli

import "fmt"

func (a *App) getStatus() string {
	s := a.Location()
	if id, ok := a.session.Identity(); ok {
		who := id.Username
		if id.IsAdmin() {
			who += "*"
		}
		s = who + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
