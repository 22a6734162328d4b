// Package dialogue routes each user turn to the booking dialogue, the FAQ
// resolver, the package recommender or a canned reply.
package dialogue

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/booking"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/catalog"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/intent"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/observability"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/textnorm"
)

const (
	farewell      = "Goodbye! Have a great trip!"
	faqTemplate   = "Here's what I found:\n- %s"
	recommendHead = "You might love these destinations:"
	noMatch       = "Sorry, no matching package found."
	fallback      = "I'm sorry, I don't understand. You can ask me to recommend trips, answer FAQs, or help you book a package."
)

// FAQResolver answers a free-form question.
type FAQResolver interface {
	Resolve(ctx context.Context, query string) (string, error)
}

// PackageRecommender ranks packages for a query.
type PackageRecommender interface {
	Recommend(query string, topK int) []catalog.Package
}

// Config holds routing settings.
type Config struct {
	TopK           int
	ExitPhrases    []string
	Greetings      []string
	CurrencySymbol string
}

// Reply is the bot's answer to one turn. End means the conversation is over.
type Reply struct {
	Text string
	End  bool
}

// Router holds the collaborators shared by every conversation.
type Router struct {
	cfg         Config
	exitPhrases []string
	classifier  intent.Classifier
	faq         FAQResolver
	recommender PackageRecommender
	booking     *booking.Dialogue
	logger      *observability.Logger

	greetings atomic.Uint64
}

// NewRouter creates a router.
func NewRouter(
	cfg Config,
	classifier intent.Classifier,
	faq FAQResolver,
	recommender PackageRecommender,
	bookings *booking.Dialogue,
	logger *observability.Logger,
) *Router {
	if logger == nil {
		logger = observability.Nop()
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "₹"
	}

	exit := make([]string, 0, len(cfg.ExitPhrases))
	for _, p := range cfg.ExitPhrases {
		if p = textnorm.Normalize(p); p != "" {
			exit = append(exit, p)
		}
	}

	return &Router{
		cfg:         cfg,
		exitPhrases: exit,
		classifier:  classifier,
		faq:         faq,
		recommender: recommender,
		booking:     bookings,
		logger:      logger,
	}
}

// NewConversation starts a conversation with no booking in progress.
func (r *Router) NewConversation() *Conversation {
	id := uuid.New()
	return &Conversation{
		id:     id,
		router: r,
		logger: r.logger.WithConversation(id.String()),
	}
}

// greet picks the next greeting round-robin.
func (r *Router) greet() string {
	if len(r.cfg.Greetings) == 0 {
		return "Hi!"
	}
	n := r.greetings.Add(1) - 1
	return r.cfg.Greetings[n%uint64(len(r.cfg.Greetings))]
}

func (r *Router) formatPackages(packages []catalog.Package) string {
	var b strings.Builder
	b.WriteString(recommendHead)
	for _, p := range packages {
		fmt.Fprintf(&b, "\n- %s: A %s trip. %s (Approx. %s%d)",
			p.Destination, p.Category, p.Description, r.cfg.CurrencySymbol, p.Price)
	}
	return b.String()
}

// Conversation owns one booking state. It is not safe for concurrent use.
type Conversation struct {
	id     uuid.UUID
	router *Router
	state  booking.State
	logger *observability.Logger
}

// ID returns the conversation id.
func (c *Conversation) ID() uuid.UUID {
	return c.id
}

// State returns the current booking state.
func (c *Conversation) State() booking.State {
	return c.state
}

// Respond handles one line of raw user input.
func (c *Conversation) Respond(ctx context.Context, raw string) (Reply, error) {
	r := c.router
	text := textnorm.Normalize(raw)

	if textnorm.ContainsAny(text, r.exitPhrases) {
		if c.state.Active() {
			c.logger.Info().Str("step", string(c.state.Step())).Msg("booking abandoned")
		}
		c.state = booking.State{}
		return Reply{Text: farewell, End: true}, nil
	}

	if c.state.Active() {
		next, out, err := r.booking.Handle(ctx, c.state, raw)
		if err != nil {
			c.logger.Error().Err(err).Str("step", string(c.state.Step())).Msg("booking turn failed")
		}
		c.logger.Debug().
			Str("from", string(c.state.Step())).
			Str("to", string(next.Step())).
			Msg("booking step")
		c.state = next
		return Reply{Text: out.Reply, End: out.Completed()}, nil
	}

	label := r.classifier.Classify(text)
	c.logger.Debug().Str("intent", string(label)).Msg("intent classified")

	switch label {
	case intent.LabelGreet:
		return Reply{Text: r.greet()}, nil

	case intent.LabelAskFAQ:
		start := time.Now()
		answer, err := r.faq.Resolve(ctx, raw)
		if err != nil {
			return Reply{}, fmt.Errorf("resolve faq: %w", err)
		}
		c.logger.Debug().Dur("elapsed", time.Since(start)).Msg("faq answered")
		return Reply{Text: fmt.Sprintf(faqTemplate, answer)}, nil

	case intent.LabelRecommend:
		packages := r.recommender.Recommend(raw, r.cfg.TopK)
		if len(packages) == 0 {
			return Reply{Text: noMatch}, nil
		}
		return Reply{Text: r.formatPackages(packages)}, nil

	case intent.LabelBook:
		next, prompt := r.booking.Start()
		c.state = next
		return Reply{Text: prompt}, nil

	default:
		return Reply{Text: fallback}, nil
	}
}
