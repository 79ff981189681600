package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tfi-timeline/internal/analytics"
	"tfi-timeline/internal/event"
	"tfi-timeline/internal/feed"
	"tfi-timeline/internal/gamification"
	"tfi-timeline/internal/ical"
	"tfi-timeline/internal/notify"
	"tfi-timeline/internal/prefs"
	"tfi-timeline/internal/storage"
)

// --- onboarding & preferences ---

func (s *Server) completeOnboarding(c *gin.Context) {
	var body prefs.Preferences
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := s.preferences.Complete(body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// first favorite hero becomes the initial filter
	if len(body.FavoriteHeroes) > 0 {
		s.setActiveFilter(body.FavoriteHeroes[0])
	}
	s.rebuildSession()
	log.Printf("✅ Onboarding complete (heroes=%d interests=%d)", len(body.FavoriteHeroes), len(body.Interests))
	c.JSON(http.StatusOK, s.preferences.Get())
}

func (s *Server) getPreferences(c *gin.Context) {
	p := s.preferences.Get()
	if p == nil {
		c.JSON(http.StatusOK, gin.H{"has_completed_onboarding": false})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) setLanguage(c *gin.Context) {
	var body struct {
		Language prefs.Language `json:"language"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := s.preferences.SetLanguage(body.Language); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.preferences.Get())
}

// --- feed ---

func (s *Server) visibleEvents(c *gin.Context) []event.Event {
	filter := s.activeFilter()
	if f, ok := c.GetQuery("filter"); ok {
		filter = f
	}
	return feed.Visible(s.userEvents.List(), s.registry, s.subscriptions.List(), filter)
}

func (s *Server) getFeed(c *gin.Context) {
	visible := s.visibleEvents(c)

	switch c.Query("view") {
	case "agenda":
		c.JSON(http.StatusOK, gin.H{"events": feed.Agenda(visible)})
	case "month":
		year, _ := strconv.Atoi(c.Query("year"))
		month, _ := strconv.Atoi(c.Query("month"))
		if year == 0 || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month view needs year and month"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"buckets": feed.MonthBuckets(visible, year, month)})
	default:
		c.JSON(http.StatusOK, gin.H{"events": visible})
	}
}

func (s *Server) exportFeed(c *gin.Context) {
	out, err := ical.Export(s.visibleEvents(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="tfi-timeline.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(out))
}

func (s *Server) setFilter(c *gin.Context) {
	var body struct {
		Filter string `json:"filter"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	s.setActiveFilter(body.Filter)
	c.JSON(http.StatusOK, gin.H{"filter": body.Filter})
}

func (s *Server) clearFilter(c *gin.Context) {
	s.setActiveFilter("")
	c.JSON(http.StatusOK, gin.H{"filter": ""})
}

// --- user events ---

func (s *Server) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": s.userEvents.List()})
}

func (s *Server) saveEvent(c *gin.Context) {
	var body event.Event
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	_, existed := s.userEvents.Get(body.ID)
	saved, err := s.userEvents.Save(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !existed {
		s.award(gamification.XPEventSaved)
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) deleteEvent(c *gin.Context) {
	// deletion is irreversible; the client must confirm explicitly
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deletion must be confirmed"})
		return
	}
	if !s.userEvents.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// --- timelines & subscriptions ---

func (s *Server) listTimelines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timelines": s.registry.List()})
}

func (s *Server) toggleTimeline(c *gin.Context) {
	id := c.Param("id")
	subscribed := s.subscriptions.Toggle(id)
	c.JSON(http.StatusOK, gin.H{"timeline_id": id, "subscribed": subscribed})
}

func (s *Server) listSubscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subscriptions": s.subscriptions.List()})
}

// --- chat & AI ---

func (s *Server) getTranscript(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": s.transcript.Messages()})
}

func (s *Server) sendChat(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	history := s.transcript.History()
	s.transcript.AppendUser(body.Text)

	turn := s.currentSession().Send(c.Request.Context(), history, body.Text)
	msg := s.transcript.AppendModel(turn.Text, turn.Proposals)

	s.record(storage.Interaction{
		Timestamp:        time.Now(),
		UserMessage:      body.Text,
		AssistantReply:   turn.Text,
		ProposalCount:    len(turn.Proposals),
		Model:            turn.Model,
		PromptTokens:     turn.PromptTokens,
		CompletionTokens: turn.CompletionTokens,
		TotalTokens:      turn.TotalTokens,
		Fallback:         turn.Fallback,
	})

	c.JSON(http.StatusOK, msg)
}

func (s *Server) acceptProposal(c *gin.Context) {
	var body event.Event
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	saved, err := s.userEvents.Save(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.award(gamification.XPProposalAccepted)
	c.JSON(http.StatusOK, saved)
}

func (s *Server) generateTrivia(c *gin.Context) {
	var body struct {
		Topic string `json:"topic"`
	}
	_ = c.ShouldBindJSON(&body)

	q := s.currentSession().Trivia(c.Request.Context(), body.Topic)
	if q == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "trivia unavailable right now"})
		return
	}
	c.JSON(http.StatusOK, s.transcript.AppendTrivia(q))
}

func (s *Server) answerTrivia(c *gin.Context) {
	var body struct {
		Correct bool `json:"correct"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	points := gamification.XPTriviaWrong
	if body.Correct {
		points = gamification.XPTriviaCorrect
	}
	s.award(points)
	c.JSON(http.StatusOK, gin.H{"xp": s.ledger.XP(), "level": s.ledger.Level()})
}

func (s *Server) generatePrediction(c *gin.Context) {
	var body struct {
		Topic string `json:"topic"`
	}
	_ = c.ShouldBindJSON(&body)

	p := s.currentSession().Predict(c.Request.Context(), body.Topic)
	if p == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "prediction unavailable right now"})
		return
	}
	c.JSON(http.StatusOK, s.transcript.AppendPrediction(p))
}

func (s *Server) liveFeed(c *gin.Context) {
	items := s.currentSession().LiveFeed(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --- notifications ---

func (s *Server) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": s.notifications.List(),
		"unread":        s.notifications.UnreadCount(),
	})
}

func (s *Server) readNotification(c *gin.Context) {
	if !s.notifications.MarkRead(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": c.Param("id")})
}

// --- gamification ---

func (s *Server) getGamification(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"xp":           s.ledger.XP(),
		"level":        s.ledger.Level(),
		"achievements": s.ledger.Achievements(),
	})
}

func (s *Server) award(points int) {
	for _, a := range s.ledger.Award(points) {
		s.notifications.Push(notify.Notification{
			Title:   "Achievement unlocked: " + a.Title,
			Message: a.Description,
			Type:    notify.TypeSystem,
		})
	}
}

// --- community ---

func (s *Server) listThreads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"threads": s.hub.List()})
}

func (s *Server) createThread(c *gin.Context) {
	var body struct {
		Title  string   `json:"title"`
		Author string   `json:"author"`
		Tags   []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	t, err := s.hub.Create(body.Title, body.Author, body.Tags)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.award(gamification.XPThreadStarted)
	c.JSON(http.StatusCreated, t)
}

func (s *Server) viewThread(c *gin.Context) {
	t, ok := s.hub.View(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) replyThread(c *gin.Context) {
	if !s.hub.Reply(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "thread not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"replied": c.Param("id")})
}

// --- stats ---

func (s *Server) getStats(c *gin.Context) {
	if s.recorder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "interaction log not configured"})
		return
	}
	interactions, err := s.recorder.LoadInteractions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load interactions"})
		return
	}
	target := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		target = parsed
	}
	c.JSON(http.StatusOK, analytics.AnalyzeDailyLogs(interactions, target))
}

func (s *Server) record(it storage.Interaction) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.AppendInteraction(it); err != nil {
		log.Printf("⚠️ failed to record interaction: %v", err)
	}
}
