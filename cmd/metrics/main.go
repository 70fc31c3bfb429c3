// Package main provides the metrics command that reports funnel and
// engagement metrics over cleaned data.
package main

import (
	"flag"
	"fmt"
	"os"

	"netreach/internal/logger"
	"netreach/internal/metrics"
	"netreach/pkg/tablefmt"
)

func main() {
	cleanedDir := flag.String("cleaned", "data/cleaned", "Directory containing cleaned datasets")
	owner := flag.String("owner", "", "Account owner name as it appears in the message export")
	period := flag.String("period", metrics.PeriodMonth, "Growth bucket period: day, week, month, year")
	windowDays := flag.Int("window", 30, "Velocity window in days")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")

	flag.Parse()

	if *owner == "" {
		fmt.Println("Usage: metrics -owner <name> [-cleaned <dir>] [-period month]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logger.NewLogger(*logLevel)

	data := metrics.LoadCleaned(*cleanedDir, log)

	if data.Invitations == nil && data.Connections == nil && data.Messages == nil {
		fmt.Fprintf(os.Stderr, "❌ No cleaned datasets found in %s — run the pipeline first\n", *cleanedDir)
		os.Exit(1)
	}

	funnel := metrics.Funnel(data.Invitations, data.Connections, data.Messages, *owner)
	response := metrics.Response(data.Messages, *owner)
	engagement := metrics.Engagement(data.Messages)

	fmt.Println("FUNNEL")
	fmt.Print(tablefmt.Render(
		[]string{"Stage", "Count", "Rate"},
		[][]string{
			{"Invitations sent", fmt.Sprintf("%d", funnel.InvitationsSent), "-"},
			{"Connections made", fmt.Sprintf("%d", funnel.ConnectionsMade), fmt.Sprintf("%.1f%%", funnel.AcceptanceRate)},
			{"Conversations", fmt.Sprintf("%d", funnel.Conversations), fmt.Sprintf("%.1f%%", funnel.MessageRate)},
			{"Outcomes", fmt.Sprintf("%d", funnel.Outcomes), fmt.Sprintf("%.1f%%", funnel.OutcomeRate)},
		},
	))

	fmt.Println("\nRESPONSES")
	fmt.Print(tablefmt.Render(
		[]string{"Metric", "Value"},
		[][]string{
			{"People messaged", fmt.Sprintf("%d", response.UniquePeopleMessaged)},
			{"People who replied", fmt.Sprintf("%d", response.UniqueRepliers)},
			{"Response rate", fmt.Sprintf("%.1f%%", response.ResponseRate)},
			{"Messages sent", fmt.Sprintf("%d", response.MessagesSent)},
			{"Messages received", fmt.Sprintf("%d", response.MessagesReceived)},
		},
	))

	fmt.Println("\nENGAGEMENT")
	fmt.Print(tablefmt.Render(
		[]string{"Signal", "Conversations"},
		[][]string{
			{"Referrals", fmt.Sprintf("%d", engagement.Referrals)},
			{"Interviews", fmt.Sprintf("%d", engagement.Interviews)},
			{"Positive sentiment", fmt.Sprintf("%d", engagement.PositiveSentiment)},
			{"Negative sentiment", fmt.Sprintf("%d", engagement.NegativeSentiment)},
			{"Avg words/message", fmt.Sprintf("%.1f", engagement.AvgWordsPerMessage)},
		},
	))

	printGrowth(data, *period, *windowDays)
}

func printGrowth(data *metrics.CleanedData, period string, windowDays int) {
	frame := data.Connections

	dateCol := metrics.FindDateColumn(frame, "connected", "date")
	if dateCol == "" {
		frame = data.Invitations
		dateCol = metrics.FindDateColumn(frame, "sent", "date")
	}

	if dateCol == "" {
		return
	}

	series := metrics.TimeSeries(frame, dateCol, period)
	if len(series) == 0 {
		return
	}

	fmt.Println("\nGROWTH")

	var rows [][]string
	for _, b := range series {
		rows = append(rows, []string{b.Period, fmt.Sprintf("%d", b.Count), fmt.Sprintf("%d", b.Cumulative)})
	}

	fmt.Print(tablefmt.Render([]string{"Period", "Count", "Cumulative"}, rows))

	velocity := metrics.Velocity(frame, dateCol, windowDays)
	fmt.Printf("\nVelocity: %d in last %d days (%.1f/week)\n",
		velocity.RecentCount, velocity.WindowDays, velocity.VelocityPerWeek)
}
