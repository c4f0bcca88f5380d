package posts

import "Agora/internal/core/users"

// PromoteSiteCreator moves the site creator to the front of the admin list,
// keeping the relative order of the others. The input is not modified.
// If the creator isn't in the list the order is unchanged.
func PromoteSiteCreator(admins []*users.UserView, creatorID int) []*users.UserView {
	out := make([]*users.UserView, 0, len(admins))
	idx := -1
	for i, a := range admins {
		if a.ID == creatorID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return append(out, admins...)
	}

	out = append(out, admins[idx])
	out = append(out, admins[:idx]...)
	return append(out, admins[idx+1:]...)
}
