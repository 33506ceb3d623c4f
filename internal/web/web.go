// Package web renders the single page that hosts the intake form and the
// coaching chat.
package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/gios-blog/runcoach/internal/banner"
	"github.com/gios-blog/runcoach/internal/intake"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Link is a footer link to a sibling tool
type Link struct {
	URL   string
	Label string
}

var FooterLinks = []Link{
	{URL: "https://gpx.gios.blog", Label: "⛰️ GPX 분석기"},
	{URL: "https://checklist.gios.blog", Label: "🎒 대회 준비물 체크"},
	{URL: "https://predict.gios.blog", Label: "⏱️ 기록 예측기"},
	{URL: "https://utmb-races.gios.blog", Label: "🏔️ UTMB 대회 정보"},
}

const Disclaimer = "이 포스팅은 쿠팡 파트너스 활동의 일환으로, 이에 따른 일정액의 수수료를 제공받습니다."

// Page is everything the page template needs
type Page struct {
	Banner          banner.Banner
	Goals           []intake.Option
	Levels          []intake.Option
	Injuries        []intake.Option
	Days            []intake.Option
	TimeOptions     map[intake.Goal][]string
	TrailGoal       intake.Goal
	DefaultInjury   string
	OpeningQuestion string
	IncompleteMsg   string
	TimeMissingMsg  string
	TrailMissingMsg string
	FooterLinks     []Link
	Disclaimer      string
}

// NewPage fills the form catalogs around the banner picked for this request
func NewPage(b banner.Banner) Page {
	return Page{
		Banner:          b,
		Goals:           intake.Goals,
		Levels:          intake.Levels,
		Injuries:        intake.Injuries,
		Days:            intake.Days,
		TimeOptions:     intake.TimeOptions,
		TrailGoal:       intake.GoalTrail,
		DefaultInjury:   intake.DefaultInjury,
		OpeningQuestion: intake.OpeningQuestion,
		IncompleteMsg:   intake.ErrIncomplete.Error(),
		TimeMissingMsg:  intake.ErrTimeRequired.Error(),
		TrailMissingMsg: intake.ErrTrailRequired.Error(),
		FooterLinks:     FooterLinks,
		Disclaimer:      Disclaimer,
	}
}

func Render(w io.Writer, p Page) error {
	return tmpl.ExecuteTemplate(w, "index", p)
}
