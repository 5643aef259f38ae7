package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"myxl/cmd/myxl/ui"
)

// Main menu entry order. Indexes match runMainMenu's dispatch.
var mainMenuItems = []ui.MenuItem{
	{Label: "Balance & overall quota"},
	{Label: "My packages"},
	{Label: "Browse package family"},
	{Label: "Bookmarks"},
	{Label: "Accounts"},
	{Label: "Quit"},
}

// runMainMenu loops the interactive picker until the user quits.
func (a *app) runMainMenu(ctx context.Context) error {
	for {
		model := ui.NewMenuModel("myxl", mainMenuItems, a.styles)
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return err
		}
		choice := final.(ui.MenuModel).Choice()

		switch choice {
		case 0:
			err = a.showDashboard(ctx)
		case 1:
			err = a.showQuotas(ctx)
		case 2:
			var code string
			code, err = a.promptFamilyCode()
			if err == nil && code != "" {
				err = a.browseFamily(ctx, code)
			}
		case 3:
			err = a.showBookmarks(ctx)
		case 4:
			err = a.manageAccounts(ctx)
		default:
			return nil
		}
		if err != nil {
			a.println(a.styles.Error.Render("Error: " + err.Error()))
		}
	}
}

// promptFamilyCode asks for a package family code, empty on cancel.
func (a *app) promptFamilyCode() (string, error) {
	model := ui.NewPromptModel("Family code", "package family UUID", a.styles)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", err
	}
	prompt := final.(ui.PromptModel)
	if prompt.Cancelled() {
		return "", nil
	}
	return prompt.Value(), nil
}
