package browser

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID        int
	Name      string
	Size      float64
	Hazardous bool
}

type scriptedPrompter struct {
	answers   []string
	questions []string
}

func (p *scriptedPrompter) Ask(question string) (string, error) {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type recordingRenderer struct {
	pages []Page
}

func (r *recordingRenderer) RenderPage(page Page) string {
	r.pages = append(r.pages, page)
	return fmt.Sprintf("page %d/%d", page.Number, page.Total)
}

func testDataset(n int) Dataset[row] {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: i + 1, Name: fmt.Sprintf("row-%02d", i+1), Size: float64(n - i), Hazardous: i%3 == 0}
	}

	return Dataset[row]{
		Title: "Rows",
		Columns: []Column[row]{
			{Title: "ID", Cell: func(r row) string { return fmt.Sprint(r.ID) }, Compare: By(func(r row) int { return r.ID })},
			{Title: "Name", Cell: func(r row) string { return r.Name }},
			{Title: "Size", Cell: func(r row) string { return fmt.Sprint(r.Size) }, Compare: By(func(r row) float64 { return r.Size })},
			{Title: "Hazardous?", Cell: func(r row) string { return fmt.Sprint(r.Hazardous) }, Compare: ByBool(func(r row) bool { return r.Hazardous }), Hazard: true},
		},
		Rows: rows,
	}
}

func newTestBrowser(t *testing.T, dataset Dataset[row], answers []string, selector Selector[row]) (*Browser[row], *scriptedPrompter, *recordingRenderer, *strings.Builder) {
	t.Helper()

	prompter := &scriptedPrompter{answers: answers}
	renderer := &recordingRenderer{}
	out := &strings.Builder{}
	b, err := New(Config[row]{Dataset: dataset, Prompter: prompter, Renderer: renderer, Output: out, Select: selector})
	require.NoError(t, err)
	return b, prompter, renderer, out
}

func pageNumbers(pages []Page) []int {
	numbers := make([]int, len(pages))
	for i, page := range pages {
		numbers[i] = page.Number
	}
	return numbers
}

func ids(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestBrowserPaginatesToEndOfTable(t *testing.T) {
	b, _, renderer, out := newTestBrowser(t, testDataset(23), []string{"5", "n", "n", "n", "n", "n", "n"}, nil)

	outcome, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, OutcomeEnd, outcome)
	assert.Equal(t, 5, b.PageCount())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pageNumbers(renderer.pages))
	assert.Len(t, renderer.pages[4].Rows, 3)
	for _, page := range renderer.pages {
		assert.Equal(t, 5, page.Total)
	}
	assert.Contains(t, out.String(), "You have reached the end of the table.")
}

func TestBrowserRestartsAtEndOfTable(t *testing.T) {
	b, _, renderer, out := newTestBrowser(t, testDataset(4), []string{"2", "n", "n", "maybe", "y", "h"}, nil)

	outcome, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, OutcomeHome, outcome)
	assert.Equal(t, []int{1, 2, 1}, pageNumbers(renderer.pages))
	assert.Contains(t, out.String(), "Invalid input: 'maybe'. Try 'y' or 'n'.")
}

func TestBrowserRejectsInvalidPageSizes(t *testing.T) {
	b, prompter, renderer, out := newTestBrowser(t, testDataset(23), []string{"abc", "0", "-3", "24", "23", "h"}, nil)

	outcome, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, OutcomeHome, outcome)
	assert.Equal(t, 1, b.PageCount())
	assert.Len(t, renderer.pages[0].Rows, 23)
	assert.Contains(t, out.String(), "You entered 24, but this dataset only has 23 rows.")
	assert.Contains(t, out.String(), "Only whole numbers can be entered here.")
	assert.Equal(t, 6, len(prompter.questions))
}

func TestBrowserBackIsRejectedOnFirstPage(t *testing.T) {
	b, _, renderer, out := newTestBrowser(t, testDataset(10), []string{"5", "b", "n", "b", "h"}, nil)

	_, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 1}, pageNumbers(renderer.pages))
	assert.Contains(t, out.String(), "You are already on the first page.")
}

func TestBrowserSortOrders(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    []int
	}{
		{name: "size ascending", answers: []string{"3", "a"}, want: []int{6, 5, 4, 3, 2, 1}},
		{name: "id descending", answers: []string{"1", "d"}, want: []int{6, 5, 4, 3, 2, 1}},
		{name: "name ascending by cell", answers: []string{"2", "a"}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "hazardous first keeps order within groups", answers: []string{"4", "h"}, want: []int{1, 4, 2, 3, 5, 6}},
		{name: "safe first keeps order within groups", answers: []string{"4", "s"}, want: []int{2, 3, 5, 6, 1, 4}},
		{name: "invalid column leaves order", answers: []string{"9"}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "non-numeric column leaves order", answers: []string{"x"}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "invalid direction leaves order", answers: []string{"1", "z"}, want: []int{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := append([]string{"2", "n", "s"}, tt.answers...)
			answers = append(answers, "h")
			b, _, renderer, _ := newTestBrowser(t, testDataset(6), answers, nil)

			_, err := b.Run(context.Background())
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, ids(b.Rows())); diff != "" {
				t.Fatalf("row order mismatch (-want +got):\n%s", diff)
			}

			last := renderer.pages[len(renderer.pages)-1]
			if len(tt.answers) == 2 && tt.answers[1] != "z" {
				assert.Equal(t, 1, last.Number, "sorting resets to the first page")
			} else {
				assert.Equal(t, 2, last.Number, "invalid sort keeps the page")
			}
		})
	}
}

func TestBrowserChooseHandsSortedRowsToSelector(t *testing.T) {
	var chosen []row
	selector := func(_ context.Context, rows []row) error {
		chosen = rows
		return nil
	}
	b, _, _, _ := newTestBrowser(t, testDataset(6), []string{"3", "s", "1", "d", "c"}, selector)

	outcome, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, OutcomeSelected, outcome)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, ids(chosen))
}

func TestBrowserSelectorErrorEndsSession(t *testing.T) {
	selector := func(context.Context, []row) error { return io.EOF }
	b, _, _, _ := newTestBrowser(t, testDataset(3), []string{"3", "c"}, selector)

	_, err := b.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestBrowserUnknownActionStaysOnPage(t *testing.T) {
	b, _, renderer, out := newTestBrowser(t, testDataset(6), []string{"3", "q", "h"}, nil)

	_, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, pageNumbers(renderer.pages))
	assert.Contains(t, out.String(), "Invalid choice.")
}

func TestBrowserEOFWrapsIOEOF(t *testing.T) {
	b, _, _, _ := newTestBrowser(t, testDataset(6), []string{"3"}, nil)

	_, err := b.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestBrowserEmptyDataset(t *testing.T) {
	b, prompter, _, _ := newTestBrowser(t, testDataset(0), nil, nil)

	_, err := b.Run(context.Background())
	assert.ErrorIs(t, err, ErrEmptyDataset)
	assert.Empty(t, prompter.questions)
}

func TestBrowserInstancesDoNotShareState(t *testing.T) {
	dataset := testDataset(6)
	first, _, _, _ := newTestBrowser(t, dataset, []string{"2", "s", "1", "d", "h"}, nil)
	_, err := first.Run(context.Background())
	require.NoError(t, err)

	second, _, renderer, _ := newTestBrowser(t, dataset, []string{"3", "h"}, nil)
	_, err = second.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(second.Rows()))
	assert.Equal(t, 2, renderer.pages[0].Total)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(dataset.Rows))
}
