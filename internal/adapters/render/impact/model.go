// Package impact renders simulation results and selection summaries.
package impact

import (
	"errors"
	"io"

	"github.com/bnema/astro-impact/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type RenderOptions struct {
	Theme domain.Theme
	// SimErr is the invariant violation reported alongside the result, if any.
	SimErr error
}

type renderReadyMsg struct{}

type model struct {
	result domain.ImpactResult
	opts   RenderOptions
	styles styles
	output string
}

func newModel(result domain.ImpactResult, opts RenderOptions) model {
	return model{
		result: result,
		opts:   opts,
		styles: newStyles(opts.Theme),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.result, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(result domain.ImpactResult, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(result, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
