package models

// Person is a tracked individual with two independent entry lists.
type Person struct {
	ID      int64
	Name    string
	Debts   []Entry
	Credits []Entry
}

// NewPerson returns a person with empty, non-nil entry lists.
func NewPerson(id int64, name string) Person {
	return Person{ID: id, Name: name, Debts: []Entry{}, Credits: []Entry{}}
}

// Entries returns the list selected by kind.
func (p *Person) Entries(kind Kind) []Entry {
	if kind == KindCredit {
		return p.Credits
	}
	return p.Debts
}

// SetEntries replaces the list selected by kind.
func (p *Person) SetEntries(kind Kind, entries []Entry) {
	if kind == KindCredit {
		p.Credits = entries
		return
	}
	p.Debts = entries
}

// Clone returns a deep copy of p.
func (p Person) Clone() Person {
	return Person{
		ID:      p.ID,
		Name:    p.Name,
		Debts:   CloneEntries(p.Debts),
		Credits: CloneEntries(p.Credits),
	}
}

// Dataset is the full collection of people; it is the unit of persistence.
type Dataset struct {
	People []Person
}

// NewDataset returns an empty dataset with a non-nil People slice.
func NewDataset() Dataset {
	return Dataset{People: []Person{}}
}

// Clone returns a deep copy of d.
func (d Dataset) Clone() Dataset {
	out := Dataset{People: make([]Person, len(d.People))}
	for i, p := range d.People {
		out.People[i] = p.Clone()
	}
	return out
}

// IndexOf returns the position of the person with id, or -1.
func (d Dataset) IndexOf(id int64) int {
	for i := range d.People {
		if d.People[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the person with id.
func (d Dataset) Find(id int64) (Person, bool) {
	if i := d.IndexOf(id); i >= 0 {
		return d.People[i], true
	}
	return Person{}, false
}

// MaxID returns the largest person or entry id in d, or 0 when d is empty.
func (d Dataset) MaxID() int64 {
	var top int64
	for _, p := range d.People {
		if p.ID > top {
			top = p.ID
		}
		for _, e := range p.Debts {
			if e.ID > top {
				top = e.ID
			}
		}
		for _, e := range p.Credits {
			if e.ID > top {
				top = e.ID
			}
		}
	}
	return top
}
