package domain

import "time"

// ResourceDirectory maps resource ids to display names in both identity
// spaces and keeps a last-activity timestamp per resource. Entries come
// and go through lifecycle events only; interaction events merely touch
// the activity bookkeeping.
type ResourceDirectory struct {
	Users        map[string]string
	Channels     map[string]string
	LastActivity map[string]time.Time
}

func NewResourceDirectory() *ResourceDirectory {
	return &ResourceDirectory{
		Users:        make(map[string]string),
		Channels:     make(map[string]string),
		LastActivity: make(map[string]time.Time),
	}
}

func (d *ResourceDirectory) AddUser(id, name string, at time.Time) {
	d.Users[id] = name
	d.LastActivity[id] = at
}

func (d *ResourceDirectory) RemoveUser(id string) {
	delete(d.Users, id)
	delete(d.LastActivity, id)
}

func (d *ResourceDirectory) AddChannel(id, name string, at time.Time) {
	d.Channels[id] = name
	d.LastActivity[id] = at
}

func (d *ResourceDirectory) RemoveChannel(id string) {
	delete(d.Channels, id)
	delete(d.LastActivity, id)
}

// Touch records activity for a resource id. Last registered wins, even
// when the timestamp runs backwards.
func (d *ResourceDirectory) Touch(id string, at time.Time) {
	d.LastActivity[id] = at
}

// UserName resolves a user id, falling back to the id itself when the
// directory has no entry.
func (d *ResourceDirectory) UserName(id string) string {
	if name, ok := d.Users[id]; ok {
		return name
	}
	return id
}

func (d *ResourceDirectory) ChannelName(id string) string {
	if name, ok := d.Channels[id]; ok {
		return name
	}
	return id
}
