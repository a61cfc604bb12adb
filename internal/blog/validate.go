// ABOUTME: Integrity predicates checked before a mutation commits
// ABOUTME: Pure reads over the store; callers hold the service lock

package blog

// emailAvailable reports whether no author other than excludingID already
// uses the given email. Pass an empty excludingID for creates.
func (s *Service) emailAvailable(email, excludingID string) bool {
	for _, a := range s.store.ListAuthors() {
		if a.ID != excludingID && a.Email == email {
			return false
		}
	}
	return true
}

// authorExists reports whether an author with the given id exists.
func (s *Service) authorExists(id string) bool {
	_, ok := s.store.GetAuthor(id)
	return ok
}

// postPublished reports whether a post with the given id exists and is
// currently published.
func (s *Service) postPublished(id string) bool {
	p, ok := s.store.GetPost(id)
	return ok && p.Published
}
