package mockregistry

import (
	"slices"
	"strings"
	"sync"
	"time"

	"folkv3/internal/registry/models"
	"folkv3/internal/registry/wire"
)

type change struct {
	privateID models.PrivateID
	publicID  models.PublicID
	at        time.Time
}

// Dataset is the in-memory registry served by the stub.
type Dataset struct {
	mu         sync.RWMutex
	people     []models.PersonMedium
	community  map[models.PrivateID]bool
	privileges []models.Privilege
	changes    []change
	now        func() time.Time
}

// NewDataset returns an empty dataset. A nil clock uses time.Now.
func NewDataset(now func() time.Time) *Dataset {
	if now == nil {
		now = time.Now
	}
	return &Dataset{
		community: make(map[models.PrivateID]bool),
		now:       now,
	}
}

// AddPerson registers a person in the registry.
func (d *Dataset) AddPerson(p models.PersonMedium) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.people = append(d.people, p)
}

// AddMember puts an existing person in the private community.
func (d *Dataset) AddMember(id models.PrivateID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.community[id] = true
}

// SetPrivileges replaces what every caller is allowed to do.
func (d *Dataset) SetPrivileges(privileges ...models.Privilege) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.privileges = slices.Clone(privileges)
}

// RecordChange marks a person as changed at the given time.
func (d *Dataset) RecordChange(id models.PrivateID, at time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recordChangeLocked(id, at)
}

func (d *Dataset) recordChangeLocked(id models.PrivateID, at time.Time) {
	c := change{privateID: id, at: at}
	if p := d.findLocked(func(p *models.PersonMedium) bool { return p.PrivateID == id }); p != nil {
		c.publicID = p.PublicID
	}
	d.changes = append(d.changes, c)
}

func (d *Dataset) Privileges() []models.Privilege {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.privileges)
}

// Find resolves a lookup request. It returns nil when nobody matches.
func (d *Dataset) Find(req wire.PersonRequest) (*models.PersonMedium, error) {
	match, err := matcher(req)
	if err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	p := d.findLocked(match)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func matcher(req wire.PersonRequest) (func(p *models.PersonMedium) bool, error) {
	selector, err := req.Selector()
	if err != nil {
		return nil, err
	}
	switch selector {
	case wire.SelectPrivateID:
		return func(p *models.PersonMedium) bool { return p.PrivateID == *req.PrivateID }, nil
	case wire.SelectPublicID:
		return func(p *models.PersonMedium) bool { return p.PublicID == *req.PublicID }, nil
	case wire.SelectPtal:
		ptal, err := models.NewPtal(req.Ptal)
		if err != nil {
			return nil, err
		}
		return func(p *models.PersonMedium) bool { return p.Ptal == ptal }, nil
	case wire.SelectNameAndAddress:
		return func(p *models.PersonMedium) bool {
			return nameMatches(p.Name, *req.Name) && addressMatches(p.Address, *req.Address)
		}, nil
	default:
		return func(p *models.PersonMedium) bool {
			return nameMatches(p.Name, *req.Name) && p.DateOfBirth == *req.DateOfBirth
		}, nil
	}
}

func (d *Dataset) findLocked(match func(p *models.PersonMedium) bool) *models.PersonMedium {
	for i := range d.people {
		if match(&d.people[i]) {
			return &d.people[i]
		}
	}
	return nil
}

// AddToCommunity adds the matched person to the private community.
func (d *Dataset) AddToCommunity(req wire.PersonRequest) (models.CommunityPerson, error) {
	match, err := matcher(req)
	if err != nil {
		return models.CommunityPerson{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	person := d.findLocked(match)
	if person == nil {
		return models.NotFoundInRegistry(), nil
	}
	if d.community[person.PrivateID] {
		return models.AlreadyMember(person.PrivateID), nil
	}
	d.community[person.PrivateID] = true
	d.recordChangeLocked(person.PrivateID, d.now())
	added := person.PersonSmall
	return models.Added(&added)
}

// RemoveFromCommunity reports whether id was a member before the call.
func (d *Dataset) RemoveFromCommunity(id models.PrivateID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.community[id] {
		return false
	}
	delete(d.community, id)
	return true
}

// RemoveAllFromCommunity removes the ids that are members and returns them in request order.
func (d *Dataset) RemoveAllFromCommunity(ids []models.PrivateID) []models.PrivateID {
	d.mu.Lock()
	defer d.mu.Unlock()
	removed := make([]models.PrivateID, 0, len(ids))
	for _, id := range ids {
		if d.community[id] {
			delete(d.community, id)
			removed = append(removed, id)
		}
	}
	return removed
}

// PrivateChanges lists community members changed since the given time.
func (d *Dataset) PrivateChanges(since time.Time) models.Changes[models.PrivateID] {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := models.Changes[models.PrivateID]{From: since, To: d.now(), IDs: []models.PrivateID{}}
	for _, c := range d.changes {
		if c.at.After(since) && d.community[c.privateID] && !slices.Contains(out.IDs, c.privateID) {
			out.IDs = append(out.IDs, c.privateID)
		}
	}
	return out
}

// PublicChanges lists public ids changed since the given time.
func (d *Dataset) PublicChanges(since time.Time) models.Changes[models.PublicID] {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := models.Changes[models.PublicID]{From: since, To: d.now(), IDs: []models.PublicID{}}
	for _, c := range d.changes {
		if c.at.After(since) && c.publicID != 0 && !slices.Contains(out.IDs, c.publicID) {
			out.IDs = append(out.IDs, c.publicID)
		}
	}
	return out
}

func nameMatches(name models.Name, param models.NameParam) bool {
	return strings.EqualFold(strings.TrimSpace(name.FirstNames), param.FirstNames) &&
		strings.EqualFold(strings.TrimSpace(name.LastName), param.LastName)
}

func addressMatches(address *models.Address, param models.AddressParam) bool {
	if !address.HasStreetAndNumbers() {
		return false
	}
	return strings.EqualFold(address.Street, param.Street) &&
		address.HouseNumber == param.HouseNumber &&
		strings.EqualFold(address.City, param.City)
}
