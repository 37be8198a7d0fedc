package domain

// Partner is an organizational entity that owns a fixed set of programs.
type Partner struct {
	ID   string
	Name string
}

// Program is a service track under a partner. Clients are enrolled in
// exactly one program.
type Program struct {
	ID        string
	Name      string
	PartnerID string
}

// FindProgram returns the program with the given ID, or nil.
func FindProgram(programs []Program, id string) *Program {
	for i := range programs {
		if programs[i].ID == id {
			return &programs[i]
		}
	}
	return nil
}

// FindPartner returns the partner with the given ID, or nil.
func FindPartner(partners []Partner, id string) *Partner {
	for i := range partners {
		if partners[i].ID == id {
			return &partners[i]
		}
	}
	return nil
}
