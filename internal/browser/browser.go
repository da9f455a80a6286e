// Package browser implements the interactive paginated table used to inspect a
// dataset and pick a record from it.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

var ErrEmptyDataset = errors.New("dataset has no rows")

type Outcome int

const (
	// OutcomeSelected means the selector accepted a record.
	OutcomeSelected Outcome = iota + 1
	// OutcomeHome means the user asked to return to the main menu.
	OutcomeHome
	// OutcomeEnd means the user declined to restart at the end of the table.
	OutcomeEnd
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeHome:
		return "home"
	case OutcomeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Prompter reads one answer per question. It returns io.EOF once input is exhausted.
type Prompter interface {
	Ask(question string) (string, error)
}

// Page is one rendered slice of the table.
type Page struct {
	Title   string
	Headers []string
	Rows    [][]string
	Number  int
	Total   int
}

type Renderer interface {
	RenderPage(page Page) string
}

// Selector is called by the choose action with the rows in their current order.
type Selector[T any] func(ctx context.Context, rows []T) error

type Config[T any] struct {
	Dataset  Dataset[T]
	Prompter Prompter
	Renderer Renderer
	Output   io.Writer
	Select   Selector[T]
}

// Browser holds the state of a single table presentation. Build a new one per view.
type Browser[T any] struct {
	dataset  Dataset[T]
	prompter Prompter
	renderer Renderer
	out      io.Writer
	selector Selector[T]

	rows     []T
	pageSize int
	start    int
}

func New[T any](cfg Config[T]) (*Browser[T], error) {
	if cfg.Prompter == nil {
		return nil, errors.New("browser prompter is required")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("browser renderer is required")
	}
	if len(cfg.Dataset.Columns) == 0 {
		return nil, errors.New("browser dataset has no columns")
	}

	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	return &Browser[T]{
		dataset:  cfg.Dataset,
		prompter: cfg.Prompter,
		renderer: cfg.Renderer,
		out:      out,
		selector: cfg.Select,
		rows:     slices.Clone(cfg.Dataset.Rows),
	}, nil
}

// Run drives the session until the user selects a record, goes home or leaves at the
// end of the table. Exhausted input ends the session with an error wrapping io.EOF.
func (b *Browser[T]) Run(ctx context.Context) (Outcome, error) {
	if len(b.rows) == 0 {
		return 0, ErrEmptyDataset
	}

	b.say("\n%s\n", b.dataset.Title)

	pageSize, err := b.askPageSize()
	if err != nil {
		return 0, err
	}
	b.pageSize = pageSize
	b.start = 0

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if b.start >= len(b.rows) {
			restart, err := b.askRestart()
			if err != nil {
				return 0, err
			}
			if !restart {
				return OutcomeEnd, nil
			}
			b.start = 0
		}

		b.say("%s\n", b.renderer.RenderPage(b.currentPage()))

		action, err := b.ask("Choose one of the following options:\n[N]ext  |  [B]ack  |  [C]hoose  |  [S]ort  |  [H]ome\n> ")
		if err != nil {
			return 0, err
		}

		switch strings.ToLower(action) {
		case "n":
			b.start += b.pageSize
		case "b":
			if b.start < b.pageSize {
				b.say("You are already on the first page.\n")
				continue
			}
			b.start -= b.pageSize
		case "c":
			if b.selector == nil {
				b.say("Nothing can be chosen from this table.\n")
				continue
			}
			if err := b.selector(ctx, slices.Clone(b.rows)); err != nil {
				return 0, err
			}
			return OutcomeSelected, nil
		case "s":
			if err := b.sort(); err != nil {
				return 0, err
			}
		case "h":
			return OutcomeHome, nil
		default:
			b.say("Invalid choice.\n")
		}
	}
}

// PageCount returns ceil(rows/pageSize), or 0 before a page size is chosen.
func (b *Browser[T]) PageCount() int {
	if b.pageSize <= 0 {
		return 0
	}
	return (len(b.rows) + b.pageSize - 1) / b.pageSize
}

// Rows returns the rows in their current display order.
func (b *Browser[T]) Rows() []T {
	return slices.Clone(b.rows)
}

func (b *Browser[T]) currentPage() Page {
	end := min(b.start+b.pageSize, len(b.rows))

	return Page{
		Title:   b.dataset.Title,
		Headers: b.dataset.Headers(),
		Rows:    b.dataset.Cells(b.rows[b.start:end]),
		Number:  b.start/b.pageSize + 1,
		Total:   b.PageCount(),
	}
}

func (b *Browser[T]) askPageSize() (int, error) {
	total := len(b.rows)
	for {
		answer, err := b.ask(fmt.Sprintf("How many rows per page do you want to see? (max %d): ", total))
		if err != nil {
			return 0, err
		}

		size, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil:
			b.say("Only whole numbers can be entered here.\n")
		case size < 1:
			b.say("A page holds at least 1 row.\n")
		case size > total:
			b.say("You entered %d, but this dataset only has %d rows.\n", size, total)
		default:
			return size, nil
		}
	}
}

func (b *Browser[T]) askRestart() (bool, error) {
	b.say("\nYou have reached the end of the table.\n")
	for {
		answer, err := b.ask("Back to the start?\nType 'y' to start over, or 'n' for the main menu: ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			b.say("Invalid input: '%s'. Try 'y' or 'n'.\n", answer)
		}
	}
}

func (b *Browser[T]) sort() error {
	b.say("\nWhich column do you want to sort by?\n")
	for i, column := range b.dataset.Columns {
		b.say("%d. %s\n", i+1, column.Title)
	}

	answer, err := b.ask("\nEnter the column number: ")
	if err != nil {
		return err
	}

	index, convErr := strconv.Atoi(answer)
	if convErr != nil || index < 1 || index > len(b.dataset.Columns) {
		b.say("Invalid choice, sorting skipped.\n")
		return nil
	}
	column := b.dataset.Columns[index-1]

	var descending bool
	if column.Hazard {
		direction, err := b.ask(fmt.Sprintf("Sort order '%s': [H]azardous first, or [S]afe first?\n> ", column.Title))
		if err != nil {
			return err
		}
		switch strings.ToLower(direction) {
		case "h":
			descending = true
		case "s":
			descending = false
		default:
			b.say("Invalid choice, sorting skipped.\n")
			return nil
		}
	} else {
		direction, err := b.ask(fmt.Sprintf("Sort order '%s': [A]scending or [D]escending?\n> ", column.Title))
		if err != nil {
			return err
		}
		switch strings.ToLower(direction) {
		case "a":
			descending = false
		case "d":
			descending = true
		default:
			b.say("Invalid choice, sorting skipped.\n")
			return nil
		}
	}

	compare := column.Compare
	if compare == nil {
		compare = By(column.Cell)
	}

	b.rows = slices.Clone(b.dataset.Rows)
	slices.SortStableFunc(b.rows, func(x, y T) int {
		if descending {
			return compare(y, x)
		}
		return compare(x, y)
	})
	b.start = 0

	return nil
}

func (b *Browser[T]) ask(question string) (string, error) {
	answer, err := b.prompter.Ask(question)
	if err != nil {
		return "", fmt.Errorf("read answer: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

func (b *Browser[T]) say(format string, args ...any) {
	_, _ = fmt.Fprintf(b.out, format, args...)
}
