package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/glowup-wallet/backend/internal/application/usecase/advice"
	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	"github.com/glowup-wallet/backend/internal/domain/entity"
	"github.com/glowup-wallet/backend/internal/integration/seed"
)

func (c *command) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Dashboard: totals, featured goals and challenges",
		Args:  cobra.NoArgs,
		RunE:  c.runSummary,
	}
}

func (c *command) runSummary(cmd *cobra.Command, _ []string) error {
	dashboard, err := c.app.Dashboard.Execute(cmd.Context(), ledger.GetDashboardInput{Theme: c.theme()})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := newStyles(out, dashboard.Theme)

	fmt.Fprintln(out, s.title.Render(dashboard.Theme.Greeting))
	fmt.Fprintln(out)
	fmt.Fprint(out, s.renderTable(table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Saved", formatMoney(dashboard.TotalSaved)},
			{"Total Spent", formatMoney(dashboard.TotalExpenses)},
			{"Total Income", formatMoney(dashboard.TotalIncome)},
		},
	}))

	if len(dashboard.FeaturedGoals) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  "+s.header.Render("Goals"))
		for _, g := range dashboard.FeaturedGoals {
			fmt.Fprintf(out, "  %s %-24s %s\n", g.Goal.Emoji, g.Goal.Title, s.progressBar(g.ProgressPercent))
		}
	}

	if len(dashboard.Challenges) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  "+s.header.Render("Challenges"))
		for _, ch := range dashboard.Challenges {
			status := "joined"
			if !ch.Active {
				status = "open"
			}
			fmt.Fprintf(out, "  %s %s %s\n",
				s.value.Render(ch.Title),
				s.muted.Render(fmt.Sprintf("(%s, +%d XP)", ch.Difficulty, ch.RewardXP)),
				s.accent.Render(status),
			)
		}
	}

	return nil
}

func (c *command) goalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "List savings goals with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, err := ledger.ResolveTheme(c.theme())
			if err != nil {
				return err
			}
			output, err := c.app.ListGoals.Execute(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := newStyles(out, theme)
			if len(output.Goals) == 0 {
				fmt.Fprintln(out, "  No goals yet.")
				return nil
			}

			rows := make([][]string, 0, len(output.Goals))
			for _, g := range output.Goals {
				rows = append(rows, []string{
					g.Goal.ID,
					g.Goal.Emoji + " " + g.Goal.Title,
					formatMoney(g.Goal.CurrentAmount),
					formatMoney(g.Goal.TargetAmount),
					strconv.Itoa(g.ProgressPercent) + "%",
				})
			}
			fmt.Fprint(out, s.renderTable(table{
				Headers: []string{"ID", "Goal", "Saved", "Target", "Progress"},
				Rows:    rows,
			}))
			return nil
		},
	}
}

func (c *command) addFundsCommand() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "add-funds <goal-id>",
		Short: "Add money to a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			theme, err := ledger.ResolveTheme(c.theme())
			if err != nil {
				return err
			}

			output, err := c.app.AddFunds.Execute(cmd.Context(), ledger.AddFundsInput{
				GoalID: args[0],
				Amount: value,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := newStyles(out, theme)
			fmt.Fprintf(out, "  %s %s  %s of %s\n",
				output.Goal.Emoji,
				s.value.Render(output.Goal.Title),
				formatMoney(output.Goal.CurrentAmount),
				formatMoney(output.Goal.TargetAmount),
			)
			fmt.Fprintln(out, "  "+s.progressBar(output.ProgressPercent))
			if output.Completed != nil {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "  "+s.accent.Render(theme.Celebration(output.Completed.Title)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", ledger.DefaultFundsIncrement.String(), "Amount to add")
	return cmd
}

func (c *command) breakdownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Spending by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dashboard, err := c.app.Dashboard.Execute(cmd.Context(), ledger.GetDashboardInput{Theme: c.theme()})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := newStyles(out, dashboard.Theme)
			if len(dashboard.Breakdown) == 0 {
				fmt.Fprintln(out, "  No expenses yet.")
				return nil
			}

			rows := make([][]string, 0, len(dashboard.Breakdown)+2)
			for _, slice := range dashboard.Breakdown {
				rows = append(rows, []string{
					slice.Category,
					formatMoney(slice.Amount),
					fmt.Sprintf("%.2f%%", slice.Percentage),
					strconv.Itoa(slice.TransactionCount),
					slice.Color,
				})
			}
			rows = append(rows, []string{"Total", formatMoney(dashboard.TotalExpenses), "", "", ""})
			fmt.Fprint(out, s.renderTable(table{
				Headers: []string{"Category", "Amount", "Share", "Count", "Color"},
				Rows:    rows,
			}))
			return nil
		},
	}
}

func (c *command) tipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tip",
		Short: "Daily money tip for the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := c.app.Tip.Execute(cmd.Context(), advice.GetTipInput{Theme: c.theme()})
			if err != nil {
				return err
			}
			theme, err := ledger.ResolveTheme(output.Theme)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := newStyles(out, theme)
			fmt.Fprintln(out, "  "+s.header.Render("Daily Tip"))
			fmt.Fprintln(out, "  "+s.value.Render(output.Tip))
			return nil
		},
	}
}

func (c *command) askCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the GlowUp Guide",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := ledger.ResolveTheme(c.theme())
			if err != nil {
				return err
			}

			output, err := c.app.Chat.Execute(cmd.Context(), advice.ChatInput{
				SessionID: "cli-" + uuid.NewString(),
				Message:   strings.Join(args, " "),
				Theme:     string(theme.Key),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := newStyles(out, theme)
			fmt.Fprintln(out, "  "+s.header.Render("GlowUp Guide"))
			fmt.Fprintln(out, "  "+s.value.Render(output.Reply))
			return nil
		},
	}
}

func (c *command) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, err := ledger.ResolveTheme(c.theme())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, theme := range entity.Themes() {
				s := newStyles(out, theme)
				marker := " "
				if theme.Key == active.Key {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s  %s\n",
					marker,
					s.accent.Render(fmt.Sprintf("%-14s", theme.Key)),
					s.muted.Render(theme.Greeting),
				)
			}
			return nil
		},
	}
}

func (c *command) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the current ledger as a TOML seed file to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			goals, err := c.app.ListGoals.Execute(cmd.Context())
			if err != nil {
				return err
			}

			snapshot := &entity.Seed{
				Transactions: c.app.ListTransactions.Execute(cmd.Context()),
				Challenges:   c.app.ListChallenges.Execute(cmd.Context()),
			}
			for _, g := range goals.Goals {
				snapshot.Goals = append(snapshot.Goals, g.Goal)
			}

			return seed.Encode(cmd.OutOrStdout(), snapshot)
		},
	}
}
