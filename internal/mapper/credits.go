package mapper

import "streamvault/internal/models"

// Crew extraction works through ordered predicate lists so the
// tie-break policy stays auditable: the first role set that yields any
// match wins, later sets are never consulted.

const topCastLimit = 5

// writerRolesByKind holds, per content kind, the role sets tried in
// order when extracting writers.
var writerRolesByKind = map[models.ContentKind][][]string{
	models.KindMovie:  {{"Writer", "Screenplay"}},
	models.KindSeries: {{"Creator"}, {"Writer", "Screenplay"}},
}

// extractDirector returns the first crew member credited as Director.
// Series carry no single director field and always render "N/A".
func extractDirector(crew []models.CrewMember, kind models.ContentKind) string {
	if kind == models.KindSeries {
		return valueMissing
	}

	for _, member := range crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return valueMissing
}

// extractWriters joins the names of crew members matching the kind's
// role sets, first non-empty set wins.
func extractWriters(crew []models.CrewMember, kind models.ContentKind) string {
	for _, roles := range writerRolesByKind[kind] {
		if names := crewNamesByJobs(crew, roles); names != "" {
			return names
		}
	}
	return valueMissing
}

// crewNamesByJobs joins the names of crew members whose job matches
// any of the given roles, preserving provider order.
func crewNamesByJobs(crew []models.CrewMember, roles []string) string {
	var joined string
	for _, member := range crew {
		for _, role := range roles {
			if member.Job == role {
				if joined != "" {
					joined += ", "
				}
				joined += member.Name
				break
			}
		}
	}
	return joined
}

// extractTopCast joins the first five credited cast members in the
// provider's listed order.
func extractTopCast(cast []models.CastMember) string {
	if len(cast) == 0 {
		return valueMissing
	}

	limit := topCastLimit
	if len(cast) < limit {
		limit = len(cast)
	}

	names := cast[0].Name
	for _, member := range cast[1:limit] {
		names += ", " + member.Name
	}
	return names
}
