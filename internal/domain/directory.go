package domain

// Employee is a directory record supplied by the identity provider.
type Employee struct {
	Email        string
	Name         string
	OrgID        string
	Role         Role
	Capabilities []Capability
	TeamID       string
}

// Actor builds the trusted caller identity from a directory record.
func (e Employee) Actor() Actor {
	return Actor{
		Email:        e.Email,
		OrgID:        e.OrgID,
		Role:         e.Role,
		Capabilities: e.Capabilities,
		TeamID:       e.TeamID,
	}
}

// Team is a team definition supplied by the team registry.
type Team struct {
	ID           string
	OrgID        string
	Name         string
	LeaderEmail  string
	MemberEmails []string
}

// EffectiveMembers returns the union of the team's members and its leader,
// deduplicated, with the leader first.
func (t Team) EffectiveMembers() []string {
	members := make([]string, 0, len(t.MemberEmails)+1)
	seen := make(map[string]bool)
	if t.LeaderEmail != "" {
		members = append(members, t.LeaderEmail)
		seen[t.LeaderEmail] = true
	}
	for _, m := range t.MemberEmails {
		if !seen[m] {
			members = append(members, m)
			seen[m] = true
		}
	}
	return members
}

// HasMember returns true if the email is the leader or one of the members.
func (t Team) HasMember(email string) bool {
	if t.LeaderEmail == email {
		return true
	}
	for _, m := range t.MemberEmails {
		if m == email {
			return true
		}
	}
	return false
}
