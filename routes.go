package main

import (
	"bytes"
	"html/template"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jheathc1/jhWebsite/internal/career"
	"github.com/Jheathc1/jhWebsite/internal/content"
	"github.com/Jheathc1/jhWebsite/internal/decode"
	"github.com/Jheathc1/jhWebsite/internal/motif"
	"github.com/Jheathc1/jhWebsite/internal/render"
	"github.com/Jheathc1/jhWebsite/internal/store"
)

const sectionCookie = "section"

type server struct {
	cfg        Config
	log        *slog.Logger
	pages      *content.Store
	visits     *store.Store
	motif      motif.Config
	adminToken string
}

func newServer(cfg Config, log *slog.Logger, pages *content.Store, visits *store.Store) (*server, error) {
	mc := motif.DefaultConfig()
	mc.TotalLayers = cfg.MotifLayers
	if err := mc.Validate(); err != nil {
		return nil, err
	}
	token, err := generateAdminToken()
	if err != nil {
		return nil, err
	}
	s := &server{cfg: cfg, log: log, pages: pages, visits: visits, motif: mc, adminToken: token}

	log.Info("admin access available", "path", "/admin/login")
	if cfg.DefaultAdmin {
		log.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	return s, nil
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(s.visitorTrackingMiddleware())
	r.SetFuncMap(template.FuncMap{
		"placeholder": decode.Placeholder,
	})
	r.LoadHTMLGlob(s.cfg.TemplateGlob)
	r.Static("/static", s.cfg.StaticDir)

	r.GET("/", s.index)
	r.GET("/career/:section", s.switchSection)
	r.GET("/resume", s.resume)
	r.GET("/decode", s.decodeText)
	r.GET("/skills/raindrop.svg", s.raindropSVG)
	r.GET("/reveal/cards", s.revealCards)
	r.GET("/reveal/slide", s.revealSlide)
	r.GET("/motif/:file", s.motifFile)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupAdminRoutes(r)
	return r
}

// Home page
func (s *server) index(c *gin.Context) {
	page := s.pages.Get()
	active := activeSection(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"content": page,
		"panels":  s.panels(page, active, "", ""),
		"resume":  resumeView{Path: page.ResumePath},
	})
}

// switchSection runs the education/career switch for one click: the panel
// being opened plays its sweep, the switch commits when the sweep ends, and
// the fragment carries the recorded sweep for the browser to replay.
func (s *server) switchSection(c *gin.Context) {
	target, err := career.ParseSection(c.Param("section"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}

	active := activeSection(c)
	sw, err := career.New(active, s.log)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	sched := motif.NewManualScheduler(time.Time{})
	recs := make(map[career.Section]*motif.Recorder, len(career.Sections))
	for _, sec := range career.Sections {
		recs[sec] = &motif.Recorder{}
		d := motif.NewDriver(motif.Options{
			Config:    s.motif,
			Surface:   recs[sec],
			Scroll:    &motif.ScrollFeed{},
			Scheduler: sched,
			Logger:    s.log,
		})
		defer d.Unmount()
		if err := sw.Register(sec, d); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
	}

	committed := false
	sw.OnCommit(func(career.Section) { committed = true })

	var sweep template.HTML
	started, _ := sw.Select(target)
	if started {
		step := time.Second / time.Duration(s.cfg.MotifFPS)
		sched.RunUntil(step, int(motif.DefaultTransitionDuration/step)+2, func() bool { return committed })

		var buf bytes.Buffer
		if err := render.WriteAnimatedSVG(&buf, motif.LongestTake(recs[target]), motif.DefaultTransitionDuration, sweepIDPrefix(target)); err != nil {
			s.log.Error("sweep render failed", "err", err)
		} else {
			sweep = template.HTML(buf.String())
		}
	}

	now := sw.Active()
	c.SetCookie(sectionCookie, string(now), 0, "/", "", false, true)
	s.log.Debug("section switched", "from", active, "to", now, "swept", started)

	c.HTML(http.StatusOK, "career-panels.html", gin.H{
		"panels": s.panels(s.pages.Get(), now, target, sweep),
	})
}

func activeSection(c *gin.Context) career.Section {
	v, err := c.Cookie(sectionCookie)
	if err != nil {
		return career.Education
	}
	sec, err := career.ParseSection(v)
	if err != nil {
		return career.Education
	}
	return sec
}

type lineView struct {
	Text    string
	DelayMS int64
}

type panelView struct {
	Section career.Section
	Title   string
	Open    bool
	Entries [][]lineView
	Motif   template.HTML // collapsed-state decoration
	Seed    uint64        // colors of Motif; scroll refreshes reuse it
	Sweep   template.HTML // transition just played into this panel
}

// Inline SVGs in one fragment need distinct gradient ids.
func motifIDPrefix(sec career.Section) string { return "motif-" + string(sec) + "-" }
func sweepIDPrefix(sec career.Section) string { return "sweep-" + string(sec) + "-" }

func (s *server) panels(page *content.Content, active, swept career.Section, sweep template.HTML) []panelView {
	out := make([]panelView, 0, len(career.Sections))
	for _, sec := range career.Sections {
		v := panelView{Section: sec, Open: sec == active}
		entries := page.Education
		v.Title = "Education"
		if sec == career.Career {
			entries = page.Career
			v.Title = "Career"
		}

		line := 0
		for _, e := range entries {
			var lines []lineView
			for _, text := range e.Lines() {
				lines = append(lines, lineView{Text: text, DelayMS: decode.Delay(line).Milliseconds()})
				line++
			}
			v.Entries = append(v.Entries, lines)
		}

		if !v.Open {
			// One color draw per rendered panel; geometry follows scroll.
			v.Seed = rand.Uint64()
			var buf bytes.Buffer
			render.WriteFrameSVG(&buf, motif.New(s.motif, motif.NewRand(v.Seed)).Frame(0, motif.Motion{}), motifIDPrefix(sec))
			v.Motif = template.HTML(buf.String())
		}
		if sec == swept {
			v.Sweep = sweep
		}
		out = append(out, v)
	}
	return out
}

// resumeView is the overlay state. ContentHidden is set while the
// overlay is open so the page template hides the main content itself.
type resumeView struct {
	Open          bool
	ContentHidden bool
	Path          string
}

func (s *server) resume(c *gin.Context) {
	open := c.Query("open") == "1" || c.Query("open") == "true"
	c.HTML(http.StatusOK, "resume.html", resumeView{
		Open:          open,
		ContentHidden: open,
		Path:          s.pages.Get().ResumePath,
	})
}
