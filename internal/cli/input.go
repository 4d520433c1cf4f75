// Package cli is the interactive repl for trying engine operations by hand.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/bastiangx/teny/internal/logger"
	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/phonotactics"
	"github.com/bastiangx/teny/pkg/sentiment"
	"github.com/bastiangx/teny/pkg/server"
	"github.com/bastiangx/teny/pkg/spell"
	"github.com/bastiangx/teny/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	labelStyle = lipgloss.NewStyle().Italic(true).Faint(true)
)

// InputHandler reads lines and runs them through the dispatcher.
//
// A line is run with the current op. A line starting with ':' names the op
// for that line only, e.g. ":translate merci fr_to_mg". ":op <name>" changes
// the current op and ":help" lists them.
type InputHandler struct {
	dispatcher *server.Dispatcher
	out        *log.Logger
	op         server.Op
	limit      int
}

// NewInputHandler creates a repl over holder. op is the starting op.
func NewInputHandler(holder *engine.Holder, op string, limit int, w io.Writer) *InputHandler {
	h := &InputHandler{
		dispatcher: server.NewDispatcher(holder),
		out:        logger.NewWithWriter(w, ""),
		op:         server.OpCheck,
		limit:      limit,
	}
	if op != "" {
		h.op = server.Op(op)
	}
	return h
}

// Start reads r until EOF.
func (h *InputHandler) Start(r io.Reader) error {
	h.out.Print("teny repl")
	h.out.Printf("current op: %s  (:help for commands, Ctrl+C to exit)", h.op)
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (h *InputHandler) handleInput(line string) {
	op := h.op
	if strings.HasPrefix(line, ":") {
		name, rest, _ := strings.Cut(line[1:], " ")
		switch name {
		case "help":
			h.printHelp()
			return
		case "op":
			h.op = server.Op(strings.TrimSpace(rest))
			h.out.Printf("current op: %s", h.op)
			return
		}
		op = server.Op(name)
		line = strings.TrimSpace(rest)
	}

	req := server.Request{Op: op, Text: line, Limit: h.limit}
	if op == server.OpTranslate {
		if i := strings.LastIndex(line, " "); i > 0 {
			if dir := line[i+1:]; strings.Contains(dir, "_to_") {
				req.Text, req.Direction = line[:i], dir
			}
		}
	}

	start := time.Now()
	res, err := h.dispatcher.Dispatch(req)
	log.Debugf("Took [ %v ] for %s '%s'", time.Since(start), op, req.Text)
	if err != nil {
		var derr *server.Error
		if errors.As(err, &derr) {
			h.out.Print(errStyle.Render(derr.Message))
			return
		}
		h.out.Print(errStyle.Render(err.Error()))
		return
	}
	h.render(res)
}

func (h *InputHandler) printHelp() {
	var names []string
	for _, op := range server.Ops() {
		names = append(names, string(op))
	}
	h.out.Print("ops: " + strings.Join(names, ", "))
	h.out.Print(":op <name>        set the current op")
	h.out.Print(":<name> <text>    run one line with another op")
	h.out.Print(":translate <word> fr_to_mg")
}

func (h *InputHandler) render(res any) {
	switch r := res.(type) {
	case spell.Result:
		if r.Correct {
			h.out.Print(okStyle.Render("correct"))
		} else if len(r.Suggestions) == 0 {
			h.out.Print(errStyle.Render("unknown word, no suggestions"))
		} else {
			h.out.Printf("did you mean: %s", wordStyle.Render(strings.Join(r.Suggestions, ", ")))
		}
		for _, e := range r.PhoneticErrors {
			h.out.Print(errStyle.Render(e))
		}
	case server.SuggestResult:
		for i, c := range r.Candidates {
			h.out.Printf("%2d. %-30s %s", i+1, wordStyle.Render(c.Word), labelStyle.Render(fmt.Sprintf("%.1f", c.Score)))
		}
	case suggest.Prediction:
		h.out.Printf("%s %s", wordStyle.Render(strings.Join(r.Words, "  ")), labelStyle.Render("("+string(r.Level)+")"))
	case server.CompletionResult:
		if r.Count == 0 {
			h.out.Printf("No suggestions found for prefix: '%s'", r.Prefix)
			return
		}
		h.out.Printf("Found %d suggestions for prefix '%s':", r.Count, r.Prefix)
		for i, s := range r.Suggestions {
			h.out.Printf("%2d. %-40s (freq: %8s)", i+1, wordStyle.Render(s.Word), utils.FormatWithCommas(s.Frequency))
		}
	case server.TranslationResult:
		if r.Translation == nil {
			h.out.Print(errStyle.Render("no translation"))
			return
		}
		h.out.Printf("%s → %s", r.Word, wordStyle.Render(*r.Translation))
	case sentiment.Result:
		h.out.Printf("%s  score=%.2f confidence=%.2f (+%d/-%d)",
			wordStyle.Render(string(r.Sentiment)), r.Score, r.Confidence, r.PositiveCount, r.NegativeCount)
		for _, d := range r.Details {
			h.out.Print(labelStyle.Render(fmt.Sprintf("  %s: %s", d.Word, d.Reason)))
		}
	case server.LemmaResult:
		l := r.Lemma
		h.out.Printf("%s  %s", wordStyle.Render(l.Lemma), labelStyle.Render(string(l.Category)))
		h.out.Print(labelStyle.Render(l.Analysis))
	case server.EntitiesResult:
		if len(r.Entities) == 0 {
			h.out.Print("no entities")
		}
		for _, e := range r.Entities {
			h.out.Printf("%-30s %s [%d:%d]", wordStyle.Render(e.Text), e.Type, e.Start, e.End)
		}
	case phonotactics.Result:
		if r.Valid {
			h.out.Print(okStyle.Render("valid"))
		}
		for _, e := range r.Errors {
			h.out.Print(errStyle.Render(e))
		}
	case server.NativeResult:
		h.out.Printf("%s likely native: %t", r.Word, r.LikelyNative)
	case server.StatsResult:
		for _, k := range slices.Sorted(maps.Keys(r.Stats)) {
			h.out.Printf("%-20s %s", k, utils.FormatWithCommas(r.Stats[k]))
		}
	default:
		h.out.Printf("%+v", res)
	}
}
