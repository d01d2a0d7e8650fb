package models

// Property is a named string attribute of a table object. Its lifecycle is
// bound to the owning record: saved alongside it and hard-deleted when the
// record is purged.
type Property struct {
	ID            int64
	TableObjectID int64
	Name          string
	Value         string
}

// Properties is a name-keyed property collection. Names are unique: Set
// updates the existing entry if present, else inserts. Iteration order is
// insertion order, which is what serialisation and the local store rely on.
type Properties struct {
	byName map[string]*Property
	order  []string
}

// NewProperties builds a collection from the given properties, later
// duplicates overwriting earlier ones.
func NewProperties(props ...Property) Properties {
	var p Properties
	for _, prop := range props {
		p.SetProperty(prop)
	}
	return p
}

// PropertiesFromMap builds a collection from a plain map. Iteration order of
// the result is unspecified between names (map order), but stable afterwards.
func PropertiesFromMap(m map[string]string) Properties {
	var p Properties
	for name, value := range m {
		p.Set(name, value)
	}
	return p
}

// Set inserts or updates the named property.
func (p *Properties) Set(name, value string) {
	p.SetProperty(Property{Name: name, Value: value})
}

// SetProperty inserts or updates prop by name, keeping the stored ID of an
// existing entry when prop carries none.
func (p *Properties) SetProperty(prop Property) {
	if p.byName == nil {
		p.byName = make(map[string]*Property)
	}
	if existing, ok := p.byName[prop.Name]; ok {
		if prop.ID == 0 {
			prop.ID = existing.ID
		}
		if prop.TableObjectID == 0 {
			prop.TableObjectID = existing.TableObjectID
		}
		*existing = prop
		return
	}
	stored := prop
	p.byName[prop.Name] = &stored
	p.order = append(p.order, prop.Name)
}

// Get returns the value of the named property and whether it exists.
func (p *Properties) Get(name string) (string, bool) {
	if p.byName == nil {
		return "", false
	}
	prop, ok := p.byName[name]
	if !ok {
		return "", false
	}
	return prop.Value, true
}

// Remove deletes the named property if present.
func (p *Properties) Remove(name string) {
	if p.byName == nil {
		return
	}
	if _, ok := p.byName[name]; !ok {
		return
	}
	delete(p.byName, name)
	for i, n := range p.order {
		if n == name {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.order)
}

// List returns the properties in insertion order.
func (p *Properties) List() []Property {
	out := make([]Property, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, *p.byName[name])
	}
	return out
}

// Map returns a plain name→value map of the properties.
func (p *Properties) Map() map[string]string {
	out := make(map[string]string, len(p.order))
	for _, name := range p.order {
		out[name] = p.byName[name].Value
	}
	return out
}

// Keep removes every property whose name is not in names. Used when only file
// metadata of a record must survive locally.
func (p *Properties) Keep(names ...string) {
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	for _, name := range append([]string(nil), p.order...) {
		if !allowed[name] {
			p.Remove(name)
		}
	}
}
