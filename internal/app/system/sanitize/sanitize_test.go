package sanitize_test

import (
	"testing"

	"careermate/internal/app/system/sanitize"
	"careermate/internal/domain/models"
)

func TestText_StripsMarkupAndEntities(t *testing.T) {
	got := sanitize.Text("<b>네이버</b> 채용 &amp; 공고 ")
	if got != "네이버 채용 & 공고" {
		t.Errorf("Text = %q", got)
	}
}

func TestNews_CleansInPlace(t *testing.T) {
	items := []models.NewsItem{
		{Title: "<em>백엔드</em> 개발자 채용", Summary: "삼성 &lt;SW&gt; 직군"},
	}
	sanitize.News(items)
	if items[0].Title != "백엔드 개발자 채용" {
		t.Errorf("title = %q", items[0].Title)
	}
	if items[0].Summary != "삼성 <SW> 직군" {
		t.Errorf("summary = %q", items[0].Summary)
	}
}
