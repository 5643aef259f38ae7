package main

import (
	"context"
	"strconv"

	"myxl/cmd/myxl/ui"
	"myxl/internal/session"
)

// manageAccounts lists stored accounts and loops switch/add/remove actions.
func (a *app) manageAccounts(ctx context.Context) error {
	for {
		accounts := a.sessions.List()
		active, _ := a.sessions.Active()

		if len(accounts) == 0 {
			a.println(a.styles.Muted.Render("No accounts stored."))
		} else {
			table := ui.NewSimpleTable("Accounts", []string{"#", "Number", "Name", "Type", "Active"})
			for i, acc := range accounts {
				mark := ""
				if active != nil && active.Number == acc.Number {
					mark = "*"
				}
				table.AddRow(strconv.Itoa(i+1), acc.Number, acc.Name, acc.SubscriptionType, mark)
			}
			a.println(table.View(a.styles))
		}

		a.println("  N      switch to account N")
		a.println("  add    add an account")
		a.println("  del N  remove account N")
		a.println("  00     back")

		input := a.readLine("Choose:")
		switch {
		case input == "00" || input == "":
			return nil
		case input == "add":
			if err := a.addAccount(); err != nil {
				a.println(a.styles.Error.Render("Error: " + err.Error()))
			}
		default:
			if n, ok := parseDelCommand(input); ok {
				if n < 1 || n > len(accounts) {
					a.println(a.styles.Warning.Render("No such account."))
					continue
				}
				if err := a.sessions.Remove(accounts[n-1].Number); err != nil {
					return err
				}
				continue
			}
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(accounts) {
				a.println(a.styles.Warning.Render("No such account."))
				continue
			}
			if err := a.sessions.SetActive(accounts[n-1].Number); err != nil {
				return err
			}
			a.println(a.styles.Success.Render("Switched to " + accounts[n-1].Number))
		}
	}
}

// addAccount stores an account from pasted token material.
func (a *app) addAccount() error {
	number := a.readLine("Phone number (628...):")
	if number == "" {
		return nil
	}
	idToken := a.readLine("ID token:")
	if idToken == "" {
		a.println(a.styles.Warning.Render("An ID token is required."))
		return nil
	}
	name := a.readLine("Label (optional):")
	subType := a.readLine("Subscription type [PREPAID]:")
	if subType == "" {
		subType = "PREPAID"
	}

	acc := session.Account{
		Number:           number,
		Name:             name,
		SubscriptionType: subType,
		Tokens:           session.Tokens{IDToken: idToken},
	}
	if err := a.sessions.Add(acc); err != nil {
		return err
	}
	a.println(a.styles.Success.Render("Account stored."))
	return nil
}
