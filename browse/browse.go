// Package browse provides the interactive terminal page browser.
package browse

import (
	"fmt"
	"net"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/internal/build"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/open"
	"github.com/tsumiki-site/tsumiki/site"
	"github.com/tsumiki-site/tsumiki/style"
)

// Options encapsulates the runtime configuration for the page browser.
type Options struct {
	// Root is the project directory.
	Root string
	// BaseURL is where selected pages open; defaults to the local preview
	// server address.
	BaseURL string
}

func (o *Options) baseURL() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}
	addr := net.JoinHostPort(viper.GetString(key.ServeHost), viper.GetString(key.ServePort))
	return fmt.Sprintf("http://%s", addr)
}

// Run initializes and executes the page browser application loop.
func Run(options *Options) error {
	cfg, err := site.Load(options.Root)
	if err != nil {
		return err
	}

	pages, err := build.Pages(options.Root)
	if err != nil {
		return err
	}

	items := lo.Map(pages, func(p *site.Page, _ int) list.Item {
		return &listItem{page: p}
	})

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(style.AccentColor).
		BorderLeftForeground(style.AccentColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(style.SecondaryColor).
		BorderLeftForeground(style.AccentColor)

	pageList := list.New(items, delegate, 0, 0)
	pageList.Title = cfg.Title
	pageList.FilterInput.Prompt = viper.GetString(key.TUISearchPromptString)

	model := &browser{
		list:    pageList,
		baseURL: options.baseURL(),
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// browser is the Bubble Tea model of the page browser.
type browser struct {
	list    list.Model
	baseURL string
	err     error
}

func (b *browser) Init() tea.Cmd {
	return nil
}

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.list.SetSize(msg.Width, msg.Height-1)
	case tea.KeyMsg:
		if b.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return b, tea.Quit
		case "enter":
			if item, ok := b.list.SelectedItem().(*listItem); ok {
				b.err = open.Start(b.baseURL + item.page.Route)
			}
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b *browser) View() string {
	if b.err != nil {
		msg := wordwrap.String(b.err.Error(), b.list.Width())
		return b.list.View() + "\n" + style.ErrorTitle(msg)
	}
	return b.list.View()
}
