package collab_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"careermate/internal/app/features/collab"
	"careermate/internal/domain/models"
	"careermate/internal/testutil"
)

func newController(t *testing.T, now time.Time) (*collab.Controller, *testutil.Env) {
	t.Helper()
	env := testutil.NewEnv(t)
	ctrl := &collab.Controller{
		Groups: env.Groups,
		Log:    env.Log,
		Now:    func() time.Time { return now },
	}
	return ctrl, env
}

func TestCreate_IDIsUnixMillisecondTimestamp(t *testing.T) {
	now := time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)
	ctrl, _ := newController(t, now)

	g, err := ctrl.Create("캡스톤 팀", models.GroupProject, 4, []string{"백엔드"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID != now.UnixMilli() {
		t.Errorf("id = %d, want %d", g.ID, now.UnixMilli())
	}

	list, err := ctrl.List("", collab.SortInsertion)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Title != "캡스톤 팀" {
		t.Errorf("list = %+v", list)
	}
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	ctrl, _ := newController(t, time.Now())
	if _, err := ctrl.Create("팀", "CLUB", 3, nil); err == nil {
		t.Fatal("unknown group type accepted")
	}
}

func TestDelete_RemovesAndClearsSelection(t *testing.T) {
	ctrl, _ := newController(t, time.Unix(1700000000, 0))
	g, err := ctrl.Create("스터디", models.GroupStudy, 3, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := ctrl.Select(g.ID); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if err := ctrl.Delete(g.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	list, err := ctrl.List("", collab.SortInsertion)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, got := range list {
		if got.ID == g.ID {
			t.Error("deleted group still listed")
		}
	}
	if ctrl.Selected() != 0 {
		t.Error("selection survived deleting the selected group")
	}
}

func TestSetNotice_AppendsExactlyOneSystemMessage(t *testing.T) {
	ctrl, env := newController(t, time.Unix(1700000000, 0))
	g, err := ctrl.Create("캡스톤 팀", models.GroupProject, 4, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	const notice = "금요일 18시 전체 회의"
	if err := ctrl.SetNotice(g.ID, notice); err != nil {
		t.Fatalf("SetNotice failed: %v", err)
	}

	got, err := env.Groups.Get(g.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Notice != notice {
		t.Errorf("notice = %q", got.Notice)
	}
	if len(got.Messages) != 1 {
		t.Fatalf("messages = %d, want exactly 1", len(got.Messages))
	}
	msg := got.Messages[0]
	if msg.Type != models.MessageSystem {
		t.Errorf("message type = %q", msg.Type)
	}
	if !strings.Contains(msg.Text, notice) {
		t.Errorf("system message %q does not contain the notice", msg.Text)
	}
}

func TestAddSchedule_DDayIsFrozenAtCreation(t *testing.T) {
	created := time.Date(2025, 5, 12, 10, 0, 0, 0, time.UTC)
	clock := created
	env := testutil.NewEnv(t)
	ctrl := &collab.Controller{
		Groups: env.Groups,
		Log:    env.Log,
		Now:    func() time.Time { return clock },
	}
	g, err := ctrl.Create("스터디", models.GroupStudy, 2, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	sched, err := ctrl.AddSchedule(g.ID, "중간 발표", "2025-05-15", "14:00")
	if err != nil {
		t.Fatalf("AddSchedule failed: %v", err)
	}
	if sched.DDay != 3 {
		t.Fatalf("dday = %d, want 3", sched.DDay)
	}

	// A full day passes. The stored value must not move: staleness is
	// the specified behavior.
	clock = clock.Add(24 * time.Hour)
	got, err := env.Groups.Get(g.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Schedules[0].DDay != 3 {
		t.Errorf("stored dday = %d, want still 3", got.Schedules[0].DDay)
	}
}

func TestSendMessage_AppendsWithUUID(t *testing.T) {
	ctrl, env := newController(t, time.Unix(1700000000, 0))
	g, err := ctrl.Create("팀", models.GroupProject, 2, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := ctrl.SendMessage(g.ID, "지민", "오늘 회의 가능?"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	got, err := env.Groups.Get(g.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Messages) != 1 {
		t.Fatalf("messages = %d", len(got.Messages))
	}
	msg := got.Messages[0]
	if msg.ID == "" || !msg.IsMe || msg.Sender != "지민" {
		t.Errorf("message = %+v", msg)
	}
}

func TestList_FilterAndSortProjections(t *testing.T) {
	env := testutil.NewEnv(t)
	clock := time.Unix(1700000000, 0)
	ctrl := &collab.Controller{
		Groups: env.Groups,
		Log:    env.Log,
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	}
	for _, g := range []struct {
		title, kind string
	}{
		{"나중 프로젝트", models.GroupProject},
		{"알고리즘 스터디", models.GroupStudy},
		{"가장 먼저", models.GroupProject},
	} {
		if _, err := ctrl.Create(g.title, g.kind, 2, nil); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	projects, err := ctrl.List(models.GroupProject, collab.SortInsertion)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 2 || projects[0].Title != "나중 프로젝트" {
		t.Errorf("filtered list = %+v", projects)
	}

	newest, err := ctrl.List("", collab.SortNewest)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if newest[0].Title != "가장 먼저" {
		t.Errorf("newest-first head = %q", newest[0].Title)
	}

	byTitle, err := ctrl.List("", collab.SortTitle)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if byTitle[0].Title != "가장 먼저" || byTitle[2].Title != "알고리즘 스터디" {
		t.Errorf("title order = %v", []string{byTitle[0].Title, byTitle[1].Title, byTitle[2].Title})
	}
}

func TestInviteLink_EncodesIDBase36(t *testing.T) {
	const id int64 = 1715500000000
	link := collab.InviteLink(id)
	wantSuffix := strconv.FormatInt(id, 36)
	if !strings.HasSuffix(link, "/invite/"+wantSuffix) {
		t.Errorf("link = %q, want base-36 suffix %q", link, wantSuffix)
	}
}

func TestInviteQR_ProducesPNG(t *testing.T) {
	png, err := collab.InviteQR(1715500000000)
	if err != nil {
		t.Fatalf("InviteQR failed: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("output is not a PNG")
	}
}
