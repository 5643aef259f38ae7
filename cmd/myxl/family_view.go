package main

import (
	"context"
	"fmt"
	"strconv"

	"myxl/cmd/myxl/ui"
)

// browseFamily lists a family's options in display order and lets the user
// drill into one.
func (a *app) browseFamily(ctx context.Context, familyCode string) error {
	sess, err := a.activeSession()
	if err != nil {
		return err
	}

	fam, err := a.client.FamilyPackages(ctx, sess, familyCode)
	if err != nil {
		return err
	}
	if len(fam.Options) == 0 {
		a.println(a.styles.Muted.Render("Family has no purchasable options."))
		return nil
	}

	for {
		table := ui.NewSimpleTable(fam.Name, []string{"#", "Variant", "Option", "Price"})
		for i, opt := range fam.Options {
			table.AddRow(
				strconv.Itoa(i+1),
				opt.VariantName,
				opt.Name,
				fmt.Sprintf("Rp %d", opt.Price),
			)
		}
		a.println(table.View(a.styles))

		input := a.readLine("Option number, or 00 to go back:")
		if input == "00" || input == "" {
			return nil
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(fam.Options) {
			a.println(a.styles.Warning.Render("No such option."))
			continue
		}
		if err := a.showPackageDetail(ctx, fam.Options[n-1].OptionCode); err != nil {
			a.println(a.styles.Error.Render("Error: " + err.Error()))
		}
	}
}

// showBookmarks lists saved packages and opens the selected one.
func (a *app) showBookmarks(ctx context.Context) error {
	marks := a.bookmarks.List()
	if len(marks) == 0 {
		a.println(a.styles.Muted.Render("No bookmarks saved."))
		return nil
	}

	for {
		table := ui.NewSimpleTable("Bookmarks", []string{"#", "Family", "Variant", "Option"})
		for i, m := range marks {
			table.AddRow(strconv.Itoa(i+1), m.FamilyName, m.VariantName, m.OptionName)
		}
		a.println(table.View(a.styles))

		input := a.readLine("Bookmark number, `del N`, or 00 to go back:")
		if input == "00" || input == "" {
			return nil
		}
		if n, ok := parseDelCommand(input); ok {
			if n < 1 || n > len(marks) {
				a.println(a.styles.Warning.Render("No such bookmark."))
				continue
			}
			if err := a.bookmarks.Remove(n - 1); err != nil {
				return err
			}
			marks = a.bookmarks.List()
			if len(marks) == 0 {
				return nil
			}
			continue
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(marks) {
			a.println(a.styles.Warning.Render("No such bookmark."))
			continue
		}
		if err := a.browseFamily(ctx, marks[n-1].FamilyCode); err != nil {
			a.println(a.styles.Error.Render("Error: " + err.Error()))
		}
	}
}
