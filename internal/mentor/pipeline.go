// Package mentor orchestrates the analysis session: style analysis,
// mentor prompts, daily mentor-gram, styled content, and summary.
package mentor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/abdulachik/mentormirror/internal/config"
	"github.com/abdulachik/mentormirror/internal/corpus"
	"github.com/abdulachik/mentormirror/internal/llm"
	"github.com/abdulachik/mentormirror/internal/session"
	"github.com/abdulachik/mentormirror/internal/store"
	"github.com/abdulachik/mentormirror/internal/style"
	"github.com/abdulachik/mentormirror/internal/tts"
)

// Pipeline runs a full mentor session.
type Pipeline struct {
	cfg      *config.Config
	client   llm.Client
	emulator *style.Emulator
	store    *store.Store         // optional history recording
	corpus   *corpus.PassageStore // optional exemplar retrieval
	speech   *tts.Client          // optional mentor-gram playback
}

// Options selects what one session run does.
type Options struct {
	Mentor      string // Empty means infer from content.
	ContentPath string
	Topic       string // Empty means random mentor-gram topic.
	Speak       bool
}

// Result collects the artifacts of one session run.
type Result struct {
	Session    *session.Session
	Analysis   style.Analysis
	Prompts    map[string]string
	Mentorgram *Mentorgram
	Content    string
	Summary    *Summary
	AudioPath  string
}

// NewPipeline wires a pipeline. Store, corpus, and speech may be nil;
// the corresponding steps are skipped.
func NewPipeline(cfg *config.Config, client llm.Client, st *store.Store, ps *corpus.PassageStore, speech *tts.Client) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		client:   client,
		emulator: style.New(client),
		store:    st,
		corpus:   ps,
		speech:   speech,
	}
}

// Run executes the full session workflow.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	content, err := os.ReadFile(opts.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load mentor content: %w", err)
	}
	text := string(content)

	mentorName := opts.Mentor
	if mentorName == "" {
		slog.Info("inferring author from content")
		mentorName = p.emulator.InferAuthor(ctx, text)
		slog.Info("inferred author", "mentor", mentorName)
	}

	sess, err := session.NewMentorSession(p.cfg.SessionsDir, mentorName)
	if err != nil {
		return nil, err
	}
	slog.Info("session started", "mentor", mentorName, "dir", sess.Dir)

	// The session row must exist before artifact rows reference it.
	p.recordSession(ctx, sess, opts.Topic)

	result := &Result{Session: sess}

	// Style analysis
	slog.Info("analyzing writing style", "mentor", mentorName)
	analysis, err := p.emulator.AnalyzeStyle(ctx, text, mentorName)
	if err != nil {
		return nil, err
	}
	result.Analysis = analysis
	analysisPath, err := sess.WriteJSON("style_analysis.json", analysis)
	if err != nil {
		return nil, err
	}
	p.record(ctx, sess.ID, "style_analysis", analysisPath)

	// Mentor prompts
	slog.Info("generating mentor prompts", "mentor", mentorName)
	result.Prompts = p.emulator.MentorPrompts(analysis)
	promptsPath, err := sess.WriteJSON("mentor_prompts.json", result.Prompts)
	if err != nil {
		return nil, err
	}
	p.record(ctx, sess.ID, "mentor_prompts", promptsPath)

	// Daily mentor-gram
	slog.Info("generating daily mentor-gram", "mentor", mentorName)
	mg, err := GenerateMentorgram(ctx, p.client, mentorName, opts.Topic, p.cfg.MentorgramTries)
	if err != nil {
		return nil, err
	}
	result.Mentorgram = mg
	mgPath, err := sess.WriteJSON(mg.FileName(), mg)
	if err != nil {
		return nil, err
	}
	p.record(ctx, sess.ID, "mentorgram", mgPath)
	p.recordMentorgram(ctx, sess.ID, mg)

	// Styled content on the mentor-gram topic
	slog.Info("generating styled content", "mentor", mentorName, "topic", mg.Topic)
	exemplars := p.exemplars(ctx, mentorName, mg.Topic)
	styled, err := p.emulator.GenerateStyled(ctx, analysis, mg.Topic, exemplars)
	if err != nil {
		return nil, err
	}
	result.Content = styled
	contentPath, err := sess.WriteText(ContentFileName(mg.Topic), styled)
	if err != nil {
		return nil, err
	}
	p.record(ctx, sess.ID, "generated_content", contentPath)

	// Optional text-to-speech
	if opts.Speak && p.speech != nil {
		slog.Info("rendering mentor-gram audio")
		audio, err := p.speech.Synthesize(ctx, mg.Speech())
		if err != nil {
			slog.Error("text-to-speech failed", "error", err)
		} else {
			audioPath, err := sess.WriteBytes("mentorgram.mp3", audio)
			if err != nil {
				return nil, err
			}
			result.AudioPath = audioPath
			p.record(ctx, sess.ID, "audio", audioPath)
		}
	}

	// Session summary
	summary := BuildSummary(sess, p.cfg.Service, p.client.Model(), analysis, mg)
	result.Summary = summary
	summaryPath, err := sess.WriteJSON("session_summary.json", summary)
	if err != nil {
		return nil, err
	}
	p.record(ctx, sess.ID, "summary", summaryPath)

	slog.Info("session complete",
		"mentor", mentorName,
		"dir", sess.Dir,
		"files", len(summary.FilesGenerated),
	)
	return result, nil
}

// ContentFileName derives the styled-content artifact name from a
// topic, sanitized and capped at 30 characters.
func ContentFileName(topic string) string {
	safe := strings.ToLower(topic)
	safe = strings.ReplaceAll(safe, " ", "_")
	safe = strings.ReplaceAll(safe, "/", "_")
	if len(safe) > 30 {
		safe = safe[:30]
	}
	return "generated_content_" + safe + ".txt"
}

// exemplars fetches reference passages when a corpus is configured.
func (p *Pipeline) exemplars(ctx context.Context, mentorName, topic string) []string {
	if p.corpus == nil {
		return nil
	}
	texts, err := p.corpus.ExemplarTexts(ctx, mentorName, topic, p.cfg.ExemplarPassages)
	if err != nil {
		slog.Warn("exemplar retrieval failed", "mentor", mentorName, "error", err)
		return nil
	}
	slog.Debug("retrieved exemplar passages", "count", len(texts))
	return texts
}

func (p *Pipeline) record(ctx context.Context, sessionID, kind, path string) {
	if p.store == nil {
		return
	}
	if err := p.store.CreateArtifact(ctx, sessionID, kind, path); err != nil {
		slog.Warn("failed to record artifact", "kind", kind, "error", err)
	}
}

func (p *Pipeline) recordSession(ctx context.Context, sess *session.Session, topic string) {
	if p.store == nil {
		return
	}
	err := p.store.CreateSession(ctx, store.SessionRecord{
		ID:      sess.ID,
		Mentor:  sess.Mentor,
		Dir:     sess.Dir,
		Service: p.cfg.Service,
		Model:   p.client.Model(),
		Topic:   topic,
	})
	if err != nil {
		slog.Warn("failed to record session", "error", err)
	}
}

func (p *Pipeline) recordMentorgram(ctx context.Context, sessionID string, mg *Mentorgram) {
	if p.store == nil {
		return
	}
	err := p.store.CreateMentorgram(ctx, store.MentorgramRecord{
		SessionID:  sessionID,
		Mentor:     mg.Mentor,
		Topic:      mg.Topic,
		Quote:      mg.Quote,
		Action:     mg.Action,
		Reflection: mg.Reflection,
		Date:       mg.Date,
	})
	if err != nil {
		slog.Warn("failed to record mentorgram", "error", err)
	}
}
