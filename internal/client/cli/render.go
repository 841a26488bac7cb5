package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/employwise/internal/client/models"
	"github.com/dmitrijs2005/employwise/internal/client/state"
)

// renderPage prints users as a table followed by the pagination footer.
func (a *App) renderPage(users []models.User, v state.PageView, term string) {
	if v.IsLoading {
		fmt.Fprintln(a.out, "Loading...")
		return
	}

	if len(users) == 0 {
		if term != "" {
			fmt.Fprintf(a.out, "No users on this page match %q\n", term)
		} else {
			fmt.Fprintln(a.out, "No users found")
		}
	} else {
		tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tAVATAR")
		for _, u := range users {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FirstName, u.LastName, u.Email, u.Avatar)
		}
		_ = tw.Flush()
	}

	fmt.Fprintf(a.out, "Page %d of %d\n", v.PageNumber, v.TotalPages)
}
