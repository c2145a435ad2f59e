// internal/app/features/collab/controller.go
package collab

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"careermate/internal/app/store/groups"
	"careermate/internal/app/system/validate"
	"careermate/internal/domain/models"
)

// inviteBase is the public link prefix invite codes hang off.
const inviteBase = "https://capstone.app/invite/"

// Sort orders for the group list projection.
const (
	SortInsertion = "insertion"
	SortNewest    = "newest"
	SortTitle     = "title"
)

// Controller manages collaboration groups. Unlike every other feature,
// nothing here touches the backend: the groups store on this device is
// the only copy that exists.
type Controller struct {
	Groups *groups.Store
	Log    *zap.Logger

	// Now is the clock used for group ids, message times, and D-day
	// computation. Tests pin it; production leaves it nil for
	// time.Now.
	Now func() time.Time

	selected int64
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Create makes a new group. Its id is the creation timestamp in unix
// milliseconds, which doubles as the insertion-order key.
func (c *Controller) Create(title, groupType string, members int, tags []string) (models.Group, error) {
	if err := validate.Required("title", title); err != nil {
		return models.Group{}, err
	}
	if groupType != models.GroupProject && groupType != models.GroupStudy {
		return models.Group{}, &validate.Error{Field: "type", Reason: "must be PROJECT or STUDY"}
	}
	g := models.Group{
		ID:      c.now().UnixMilli(),
		Title:   title,
		Type:    groupType,
		Members: members,
		Tags:    tags,
	}
	if err := c.Groups.Append(g); err != nil {
		return models.Group{}, err
	}
	c.Log.Info("group created", zap.Int64("id", g.ID), zap.String("title", title))
	return g, nil
}

// Delete removes a group. Deleting the selected group also clears the
// selection.
func (c *Controller) Delete(id int64) error {
	if err := c.Groups.Remove(id); err != nil {
		return err
	}
	if c.selected == id {
		c.selected = 0
	}
	return nil
}

// Select marks a group as the active one.
func (c *Controller) Select(id int64) error {
	if _, err := c.Groups.Get(id); err != nil {
		return err
	}
	c.selected = id
	return nil
}

// Selected returns the active group id, or 0 when none is selected.
func (c *Controller) Selected() int64 {
	return c.selected
}

/*─────────────────────────────────────────────────────────────────────────────*
| Sub-entity appends                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// SendMessage appends a chat message sent by the local user.
func (c *Controller) SendMessage(groupID int64, sender, text string) error {
	if err := validate.Required("text", text); err != nil {
		return err
	}
	msg := models.Message{
		ID:     uuid.NewString(),
		Sender: sender,
		Text:   text,
		SentAt: c.now(),
		IsMe:   true,
	}
	return c.Groups.Update(groupID, func(g *models.Group) error {
		g.Messages = append(g.Messages, msg)
		return nil
	})
}

// AddSchedule appends a dated milestone. The D-day count is computed
// here, once, and stored; it is never refreshed afterwards, so a card
// created three days out still says D-3 tomorrow. Known property, kept
// as is.
func (c *Controller) AddSchedule(groupID int64, title, date, timeOfDay string) (models.Schedule, error) {
	if err := validate.FirstRequired("title", title, "date", date); err != nil {
		return models.Schedule{}, err
	}
	target, err := time.Parse("2006-01-02", date)
	if err != nil {
		return models.Schedule{}, &validate.Error{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	sched := models.Schedule{
		ID:    uuid.NewString(),
		Title: title,
		Date:  date,
		Time:  timeOfDay,
		DDay:  dday(target, c.now()),
	}
	err = c.Groups.Update(groupID, func(g *models.Group) error {
		g.Schedules = append(g.Schedules, sched)
		return nil
	})
	if err != nil {
		return models.Schedule{}, err
	}
	return sched, nil
}

// AddDocument appends a shared link or file reference.
func (c *Controller) AddDocument(groupID int64, doc models.Document) error {
	if err := validate.Required("title", doc.Title); err != nil {
		return err
	}
	doc.ID = uuid.NewString()
	if doc.Date == "" {
		doc.Date = c.now().Format("2006-01-02")
	}
	return c.Groups.Update(groupID, func(g *models.Group) error {
		g.Documents = append(g.Documents, doc)
		return nil
	})
}

// SetNotice replaces the group notice and appends exactly one system
// message announcing it, in the same store write.
func (c *Controller) SetNotice(groupID int64, notice string) error {
	if err := validate.Required("notice", notice); err != nil {
		return err
	}
	announcement := models.Message{
		ID:     uuid.NewString(),
		Sender: "공지",
		Text:   fmt.Sprintf("공지가 등록되었습니다: %s", notice),
		SentAt: c.now(),
		Type:   models.MessageSystem,
	}
	return c.Groups.Update(groupID, func(g *models.Group) error {
		g.Notice = notice
		g.Messages = append(g.Messages, announcement)
		return nil
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| List projections                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// List returns groups filtered by type ("" for all) and sorted by the
// given order. Pure projection; the stored collection keeps insertion
// order regardless.
func (c *Controller) List(groupType, order string) ([]models.Group, error) {
	all, err := c.Groups.List()
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, g := range all {
		if groupType == "" || g.Type == groupType {
			out = append(out, g)
		}
	}
	switch order {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	return out, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Invites                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// InviteLink derives a shareable link from the group id, encoded in
// base 36 to keep it short.
func InviteLink(groupID int64) string {
	return inviteBase + strconv.FormatInt(groupID, 36)
}

// InviteQR renders the invite link as a PNG QR code.
func InviteQR(groupID int64) ([]byte, error) {
	png, err := qrcode.Encode(InviteLink(groupID), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("render invite QR: %w", err)
	}
	return png, nil
}

// dday is the whole-day countdown to target: 3 days out is D-3, today
// or past is 0 or negative.
func dday(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}
