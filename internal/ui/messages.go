package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rewined/labelgrid/internal/toolkit"
)

// Messages

type formatsMsg struct {
	formats []toolkit.Format
}

type generateDoneMsg struct {
	resp toolkit.GenerateResponse
	err  error
}

type importDoneMsg struct {
	resp toolkit.ImportResponse
	err  error
}

// Commands

func fetchFormatsCmd(ctx context.Context, client *toolkit.Client) tea.Cmd {
	return func() tea.Msg {
		formats, err := client.FetchFormats(ctx)
		if err != nil || len(formats) == 0 {
			// The built-in table keeps format cycling working offline.
			return formatsMsg{formats: toolkit.DefaultFormats()}
		}
		return formatsMsg{formats: formats}
	}
}

func generateCmd(ctx context.Context, client *toolkit.Client, req toolkit.GenerateRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.GenerateLabels(ctx, req)
		return generateDoneMsg{resp: resp, err: err}
	}
}

func uploadCmd(ctx context.Context, client *toolkit.Client, path string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.UploadCSV(ctx, path)
		return importDoneMsg{resp: resp, err: err}
	}
}
