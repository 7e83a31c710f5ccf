package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errAccountNotFound   = "account not found"
	errItineraryNotFound = "itinerary not found"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"

	errFailedGetAccountFmt = "failed to get account: %w"

	errFailedListCardsFmt = "failed to list access cards: %w"
	errFailedScanCardFmt  = "failed to scan access card: %w"
	errIterateCardsFmt    = "error iterating access cards: %w"

	errFailedLookupPermissionFmt = "failed to look up permission: %w"
	errFailedDecodeRulesFmt      = "failed to decode permission rules: %w"

	errFailedListSchoolsFmt = "failed to list schools: %w"
	errFailedScanSchoolFmt  = "failed to scan school: %w"
	errIterateSchoolsFmt    = "error iterating schools: %w"

	errFailedStartTransactionFmt  = "failed to start transaction: %w"
	errFailedCommitTransactionFmt = "failed to commit transaction: %w"

	errFailedCreateItineraryFmt   = "failed to create itinerary: %w"
	errFailedGetItineraryFmt      = "failed to get itinerary: %w"
	errFailedListItinerariesFmt   = "failed to list itineraries: %w"
	errFailedScanItineraryFmt     = "failed to scan itinerary: %w"
	errIterateItinerariesFmt      = "error iterating itineraries: %w"
	errFailedUpdateItineraryFmt   = "failed to update itinerary: %w"
	errFailedDeleteItineraryFmt   = "failed to delete itinerary: %w"
	errFailedCreateActivityFmt    = "failed to create activity: %w"
	errFailedListActivitiesFmt    = "failed to list activities: %w"
	errFailedScanActivityFmt      = "failed to scan activity: %w"
	errIterateActivitiesFmt       = "error iterating activities: %w"
	errFailedReplaceActivitiesFmt = "failed to replace activities: %w"
)

var (
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
)
