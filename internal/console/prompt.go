package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/lox/blackjack/internal/game"
)

// ErrInterrupted is returned when the user abandons a prompt
var ErrInterrupted = errors.New("interrupted")

const (
	continuePrompt    = "Press enter to continue..."
	playerCountPrompt = "How many people are playing?\nEnter a number: "
	playerCountRetry  = "Enter a number between 1 and %d: "
)

// LinePrompter reads plain lines from a reader, writing prompts to out
type LinePrompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter over in and out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// RequestLine writes prompt and returns the next line without its newline. A
// final unterminated line is returned; after that io.EOF.
func (p *LinePrompter) RequestLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskPlayerCount asks how many players are seated, reprompting until the
// answer is between 1 and maxSeats
func AskPlayerCount(ctx context.Context, prompter game.Prompter, maxSeats int) (int, error) {
	prompt := playerCountPrompt
	for {
		line, err := prompter.RequestLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= maxSeats {
			return n, nil
		}
		prompt = fmt.Sprintf(playerCountRetry, maxSeats)
	}
}
