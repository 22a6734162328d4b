package dialogue

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunOptions controls transcript framing.
type RunOptions struct {
	// Prompt is written before each read. Empty writes nothing.
	Prompt string
	// Format renders a reply. Defaults to "Bot: <text>".
	Format func(Reply) string
}

// Run reads one line per turn from in and writes one reply per turn to out.
// Blank lines are skipped. It returns when a reply ends the conversation,
// in is exhausted or ctx is done.
func Run(ctx context.Context, conv *Conversation, in io.Reader, out io.Writer, opts RunOptions) error {
	format := opts.Format
	if format == nil {
		format = func(r Reply) string { return "Bot: " + r.Text }
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if opts.Prompt != "" {
			fmt.Fprint(out, opts.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		reply, err := conv.Respond(ctx, line)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n\n", format(reply))

		if reply.End {
			return nil
		}
	}
}
