package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"nedarim/internal/backup"
	"nedarim/internal/config"
	"nedarim/internal/database"
	"nedarim/internal/logging"
	"nedarim/internal/rates"
	"nedarim/internal/recon"
	"nedarim/internal/seed"
	"nedarim/internal/store"
)

func main() {
	runBackup := flag.Bool("backup", false, "run an encrypted backup and exit")
	flag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := seed.Run(db, logger); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	ctx := context.Background()
	settings := store.NewSettingsStore(db)

	if *runBackup {
		mgr := backup.NewManager(backup.Config{
			S3: backup.S3Config{
				Endpoint:  cfg.BackupEndpoint,
				Bucket:    cfg.BackupBucket,
				Region:    cfg.BackupRegion,
				AccessKey: cfg.BackupAccessKey,
				SecretKey: cfg.BackupSecretKey,
			},
			DBPath:     cfg.DBPath,
			Passphrase: cfg.BackupPassphrase,
		}, db, settings, logger.With("component", "backup"))

		key, err := mgr.Run(ctx)
		if err != nil {
			log.Fatalf("backup failed: %v", err)
		}
		fmt.Printf("Backup uploaded: %s\n", key)
		return
	}

	if err := printDashboard(ctx, db, settings); err != nil {
		log.Fatalf("dashboard failed: %v", err)
	}
}

// printDashboard recomputes the full reconciliation pass and renders the
// organization view on stdout.
func printDashboard(ctx context.Context, db *sql.DB, settings *store.SettingsStore) error {
	now := time.Now().UTC()

	snap, err := store.LoadSnapshot(db)
	if err != nil {
		return err
	}
	categories, err := settings.ListCategories()
	if err != nil {
		return err
	}
	accounts, err := settings.ListAccounts()
	if err != nil {
		return err
	}
	window, err := settings.CampaignWindow()
	if err != nil {
		return err
	}

	summaries := recon.SummarizeAll(*snap, now)
	stats := recon.Aggregate(summaries, *snap, categories, accounts, window, now)

	orgName, err := settings.Get(store.KeyOrgName)
	if err != nil {
		return err
	}
	if orgName == "" {
		orgName = "Nedarim"
	}

	rate := rates.NewClient().Rate(ctx, now.Format("2006-01-02"))

	fmt.Printf("%s - %s\n\n", orgName, now.Format("2006-01-02"))
	fmt.Printf("Promesses:  %s ₪\n", stats.TotalPledged.StringFixed(0))
	fmt.Printf("Encaisse:   %s ₪\n", stats.TotalPaid.StringFixed(0))
	fmt.Printf("Reste du:   %s ₪\n", stats.TotalDue.StringFixed(0))
	fmt.Printf("Collecte:   %.1f%% (attendu %.1f%%)", stats.ActualCollectionPercent, stats.ExpectedCollectionPercent)
	if stats.IsLate {
		fmt.Printf("  EN RETARD")
	}
	fmt.Printf("\nTaux EUR/ILS du jour: %.4f\n\n", rate)

	fmt.Println("Promesses par categorie:")
	for _, c := range stats.PledgesByCategory {
		fmt.Printf("  %-20s %s ₪\n", c.Name, c.Total.StringFixed(0))
	}
	fmt.Println("\nEncaissements par compte:")
	for _, a := range stats.ReceiptsByAccount {
		fmt.Printf("  %-20s %s ₪\n", a.Name, a.Total.StringFixed(0))
	}

	fmt.Printf("\nFideles: %d (ACTIF %d, OCCASIONNEL %d, RECENT %d, INACTIF %d)\n\n",
		stats.TotalMembers,
		stats.StatusCounts[recon.StatusActive],
		stats.StatusCounts[recon.StatusOccasional],
		stats.StatusCounts[recon.StatusRecent],
		stats.StatusCounts[recon.StatusInactive],
	)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NOM\tPRENOM\tSTATUT\tPROMIS\tPAYE\tRESTE")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.LastName, s.FirstName, s.Status,
			s.TotalPledged.StringFixed(0), s.TotalPaid.StringFixed(0), s.RemainingDue.StringFixed(0),
		)
	}
	return w.Flush()
}
