package db

import (
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStorage is an in-memory Store used for development and tests. It
// mirrors MongoStorage semantics: unique CNICs, registration-order
// listing, and copy-on-read so callers can't mutate stored records.
type MemStorage struct {
	mtx        sync.RWMutex
	volunteers []*Volunteer // registration order
	byID       map[string]*Volunteer
	byCNIC     map[string]*Volunteer
	admins     map[string]*Admin
}

// NewMemStorage returns an empty in-memory store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		byID:   map[string]*Volunteer{},
		byCNIC: map[string]*Volunteer{},
		admins: map[string]*Admin{},
	}
}

func (ms *MemStorage) Close() {}

// Reset drops all stored documents.
func (ms *MemStorage) Reset() error {
	ms.mtx.Lock()
	defer ms.mtx.Unlock()
	ms.volunteers = nil
	ms.byID = map[string]*Volunteer{}
	ms.byCNIC = map[string]*Volunteer{}
	ms.admins = map[string]*Admin{}
	return nil
}

func (ms *MemStorage) insertVolunteer(v *Volunteer) (string, error) {
	if existing, ok := ms.byCNIC[v.CNIC]; ok && existing.ID != v.ID {
		return "", ErrAlreadyExists
	}
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	if v.RegistrationDate.IsZero() {
		v.RegistrationDate = time.Now()
	}
	stored := *v
	id := stored.ID.Hex()
	if prev, ok := ms.byID[id]; ok {
		delete(ms.byCNIC, prev.CNIC)
		for i, p := range ms.volunteers {
			if p.ID == stored.ID {
				ms.volunteers[i] = &stored
				break
			}
		}
	} else {
		ms.volunteers = append(ms.volunteers, &stored)
	}
	ms.byID[id] = &stored
	ms.byCNIC[stored.CNIC] = &stored
	return id, nil
}

func (ms *MemStorage) SetVolunteer(v *Volunteer) (string, error) {
	ms.mtx.Lock()
	defer ms.mtx.Unlock()
	return ms.insertVolunteer(v)
}

func (ms *MemStorage) Volunteer(id string) (*Volunteer, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidData
	}
	ms.mtx.RLock()
	defer ms.mtx.RUnlock()
	v, ok := ms.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (ms *MemStorage) Volunteers() ([]*Volunteer, error) {
	ms.mtx.RLock()
	defer ms.mtx.RUnlock()
	out := make([]*Volunteer, 0, len(ms.volunteers))
	for _, v := range ms.volunteers {
		cp := *v
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RegistrationDate.Before(out[j].RegistrationDate)
	})
	return out, nil
}

func (ms *MemStorage) DelVolunteer(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidData
	}
	ms.mtx.Lock()
	defer ms.mtx.Unlock()
	v, ok := ms.byID[id]
	if !ok {
		return nil
	}
	delete(ms.byID, id)
	delete(ms.byCNIC, v.CNIC)
	for i, p := range ms.volunteers {
		if p.ID == v.ID {
			ms.volunteers = append(ms.volunteers[:i], ms.volunteers[i+1:]...)
			break
		}
	}
	return nil
}

func (ms *MemStorage) SetBulkVolunteers(volunteers []*Volunteer) (int, error) {
	ms.mtx.Lock()
	defer ms.mtx.Unlock()
	added := 0
	for _, v := range volunteers {
		if _, err := ms.insertVolunteer(v); err != nil {
			if err == ErrAlreadyExists {
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}

func (ms *MemStorage) UpdateVolunteersStatus(ids []string, status VolunteerStatus) (int, error) {
	if !ValidStatus(status) {
		return 0, ErrInvalidData
	}
	for _, id := range ids {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			return 0, ErrInvalidData
		}
	}
	ms.mtx.Lock()
	defer ms.mtx.Unlock()
	updated := 0
	for _, id := range ids {
		if v, ok := ms.byID[id]; ok && v.Status != status {
			v.Status = status
			updated++
		}
	}
	return updated, nil
}

func (ms *MemStorage) CountVolunteers() (int64, error) {
	ms.mtx.RLock()
	defer ms.mtx.RUnlock()
	return int64(len(ms.volunteers)), nil
}

func (ms *MemStorage) Stats() (*Stats, error) {
	ms.mtx.RLock()
	defer ms.mtx.RUnlock()
	stats := &Stats{ByProvince: []ProvinceCount{}, Recent: []RecentRegistration{}}
	provinces := map[string]int64{}
	for _, v := range ms.volunteers {
		stats.Total++
		switch v.Status {
		case StatusActive:
			stats.Active++
		case StatusPending:
			stats.Pending++
		case StatusInactive:
			stats.Inactive++
		}
		provinces[v.ProvinceName]++
	}
	for name, count := range provinces {
		stats.ByProvince = append(stats.ByProvince, ProvinceCount{Province: name, Count: count})
	}
	sort.Slice(stats.ByProvince, func(i, j int) bool {
		if stats.ByProvince[i].Count != stats.ByProvince[j].Count {
			return stats.ByProvince[i].Count > stats.ByProvince[j].Count
		}
		return stats.ByProvince[i].Province < stats.ByProvince[j].Province
	})
	recent := make([]*Volunteer, len(ms.volunteers))
	copy(recent, ms.volunteers)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].RegistrationDate.After(recent[j].RegistrationDate)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	for _, v := range recent {
		stats.Recent = append(stats.Recent, RecentRegistration{
			ID:       v.ID.Hex(),
			FullName: v.FullName,
			District: v.DistrictName,
			Date:     v.RegistrationDate,
		})
	}
	return stats, nil
}

func (ms *MemStorage) Admin(username string) (*Admin, error) {
	if username == "" {
		return nil, ErrInvalidData
	}
	ms.mtx.RLock()
	defer ms.mtx.RUnlock()
	admin, ok := ms.admins[username]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *admin
	return &cp, nil
}

func (ms *MemStorage) SetAdmin(admin *Admin) error {
	if admin.Username == "" || admin.Password == "" {
		return ErrInvalidData
	}
	ms.mtx.Lock()
	defer ms.mtx.Unlock()
	cp := *admin
	ms.admins[admin.Username] = &cp
	return nil
}
