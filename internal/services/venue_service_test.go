package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)

func addVenueRow(rows *sqlmock.Rows, id int, name, city, state string) *sqlmock.Rows {
	return rows.AddRow(id, name, city, state, "1015 Folsom Street", "123-123-1234",
		"https://images.example/hop.jpg", "{Jazz,Reggae}", "https://www.facebook.com/TheMusicalHop",
		"https://www.themusicalhop.com", true, "We are on the lookout for a local artist", createdAt, createdAt)
}

func TestCreateVenueRequiresNameAndGenres(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	venue, err := svc.CreateVenue(db, VenueFields{Name: "   ", Genres: []string{"", " "}})

	assert.Nil(t, venue)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"name", "genres"}, ve.Fields)
	assert.True(t, IsValidation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVenueRejectsMalformedLink(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	_, err := svc.CreateVenue(db, VenueFields{Name: "The Musical Hop", Genres: []string{"Jazz"}, WebsiteLink: "themusicalhop"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"website_link"}, ve.Fields)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVenue(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`INSERT INTO "venues"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	venue, err := svc.CreateVenue(db, VenueFields{
		Name:   " The Musical Hop ",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Jazz", "Reggae", "Swing"},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), venue.ID)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, []string{"Jazz", "Reggae", "Swing"}, []string(venue.Genres))
	assert.True(t, venue.SeekingTalent, "seeking_talent defaults to true")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVenueStoreFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`INSERT INTO "venues"`)).WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	venue, err := svc.CreateVenue(db, VenueFields{Name: "The Musical Hop", Genres: []string{"Jazz"}, SeekingTalent: boolPtr(false)})

	assert.Nil(t, venue)
	assert.True(t, IsStore(err))
	assert.Contains(t, err.Error(), "create venue")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVenueByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE "venues"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows(venueColumns))

	venue, err := svc.GetVenueByID(db, 404)

	assert.Nil(t, venue)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "venue", nf.Entity)
	assert.Equal(t, uint(404), nf.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVenueByIDPartitionsShows(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE "venues"."id" = $1`)).
		WillReturnRows(addVenueRow(sqlmock.NewRows(venueColumns), 1, "The Musical Hop", "San Francisco", "CA"))
	mock.ExpectQuery(`SELECT \* FROM "shows" WHERE "shows"\."venue_id" (=|IN)`).
		WillReturnRows(sqlmock.NewRows(showColumns).
			AddRow(10, fixedNow.Add(-72*time.Hour), 1, 4, createdAt).
			AddRow(11, fixedNow.Add(72*time.Hour), 1, 4, createdAt).
			AddRow(12, fixedNow, 1, 4, createdAt))
	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE "artists"\."id" (=|IN)`).
		WillReturnRows(sqlmock.NewRows(artistColumns).
			AddRow(4, "Guns N Petals", "San Francisco", "CA", "326-123-5000", "{Rock n Roll}",
				"https://images.example/gnp.jpg", "", "", true, "", createdAt, createdAt))

	venue, err := svc.GetVenueByID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, []string(venue.Genres))
	require.Len(t, venue.Shows, 3)
	require.NotNil(t, venue.Shows[0].Artist)
	assert.Equal(t, "Guns N Petals", venue.Shows[0].Artist.Name)

	p := svc.Shows(venue)
	require.Len(t, p.Past, 1)
	require.Len(t, p.Upcoming, 1)
	assert.Equal(t, uint(10), p.Past[0].ID)
	assert.Equal(t, uint(11), p.Upcoming[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVenueNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE "venues"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows(venueColumns))
	mock.ExpectRollback()

	venue, err := svc.UpdateVenue(db, 9, VenueFields{Name: "Renamed", Genres: []string{"Jazz"}})

	assert.Nil(t, venue)
	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVenueReplacesEveryField(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE "venues"."id" = $1`)).
		WillReturnRows(addVenueRow(sqlmock.NewRows(venueColumns), 1, "The Musical Hop", "San Francisco", "CA"))
	mock.ExpectExec(q(`UPDATE "venues" SET`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	venue, err := svc.UpdateVenue(db, 1, VenueFields{
		Name:          "The Musical Hop Annex",
		City:          "Oakland",
		State:         "CA",
		Genres:        []string{"Swing"},
		SeekingTalent: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), venue.ID)
	assert.Equal(t, createdAt, venue.CreatedAt)
	assert.Equal(t, "The Musical Hop Annex", venue.Name)
	assert.Equal(t, "Oakland", venue.City)
	assert.Equal(t, []string{"Swing"}, []string(venue.Genres))
	assert.False(t, venue.SeekingTalent)
	// Fields left empty in the set are cleared, not kept
	assert.Empty(t, venue.Address)
	assert.Empty(t, venue.Phone)
	assert.Empty(t, venue.WebsiteLink)
	assert.Empty(t, venue.SeekingDescription)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVenueValidatesBeforeTouchingStore(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	_, err := svc.UpdateVenue(db, 1, VenueFields{Name: "No genres"})

	assert.True(t, IsValidation(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVenueCascadesToShows(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE "venues"."id" = $1`)).
		WillReturnRows(addVenueRow(sqlmock.NewRows(venueColumns), 3, "Park Square Live Music & Coffee", "San Francisco", "CA"))
	mock.ExpectExec(q(`DELETE FROM "shows" WHERE venue_id = $1`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(q(`DELETE FROM "venues" WHERE "venues"."id" = $1`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := svc.DeleteVenue(db, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	// No statement touched the artists table
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVenueNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE "venues"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows(venueColumns))
	mock.ExpectRollback()

	removed, err := svc.DeleteVenue(db, 3)

	assert.Zero(t, removed)
	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVenueStoreFailureDeletesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE "venues"."id" = $1`)).
		WillReturnRows(addVenueRow(sqlmock.NewRows(venueColumns), 3, "Park Square Live Music & Coffee", "San Francisco", "CA"))
	mock.ExpectExec(q(`DELETE FROM "shows" WHERE venue_id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(q(`DELETE FROM "venues" WHERE "venues"."id" = $1`)).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	removed, err := svc.DeleteVenue(db, 3)

	assert.Zero(t, removed)
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "delete venue", se.Op)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchVenues(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	rows := sqlmock.NewRows(venueColumns)
	addVenueRow(rows, 1, "The Musical Hop", "San Francisco", "CA")
	addVenueRow(rows, 3, "Park Square Live Music & Coffee", "San Francisco", "CA")

	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE name ILIKE $1 ORDER BY id`)).
		WithArgs("%Music%").
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT \* FROM "shows" WHERE "shows"\."venue_id" IN`).
		WillReturnRows(sqlmock.NewRows(showColumns).
			AddRow(20, fixedNow.Add(time.Hour), 1, 4, createdAt).
			AddRow(21, fixedNow.Add(-time.Hour), 3, 4, createdAt))

	count, venues, err := svc.Search(db, "Music")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, venues, 2)
	assert.Equal(t, "The Musical Hop", venues[0].Name)
	assert.Equal(t, "Park Square Live Music & Coffee", venues[1].Name)
	assert.Equal(t, 1, svc.Shows(&venues[0]).UpcomingCount())
	assert.Equal(t, 0, svc.Shows(&venues[1]).UpcomingCount())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchVenuesNoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectQuery(q(`SELECT * FROM "venues" WHERE name ILIKE $1`)).
		WithArgs("%zzz%").
		WillReturnRows(sqlmock.NewRows(venueColumns))

	count, venues, err := svc.Search(db, "zzz")

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, venues)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListGroupedByArea(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	rows := sqlmock.NewRows(venueColumns)
	addVenueRow(rows, 1, "The Musical Hop", "San Francisco", "CA")
	addVenueRow(rows, 2, "The Dueling Pianos Bar", "New York", "NY")
	addVenueRow(rows, 3, "Park Square Live Music & Coffee", "San Francisco", "CA")

	mock.ExpectQuery(q(`SELECT * FROM "venues" ORDER BY id`)).WillReturnRows(rows)
	mock.ExpectQuery(`SELECT \* FROM "shows"`).WillReturnRows(sqlmock.NewRows(showColumns))

	areas, err := svc.ListGroupedByArea(db)

	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Len(t, areas[0].Venues, 2)
	assert.Equal(t, "New York", areas[1].City)
	assert.Len(t, areas[1].Venues, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListGroupedByAreaStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectQuery(q(`SELECT * FROM "venues"`)).WillReturnError(errors.New("relation does not exist"))

	areas, err := svc.ListGroupedByArea(db)

	assert.Nil(t, areas)
	assert.True(t, IsStore(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountVenues(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVenueService(fixedClock)

	mock.ExpectQuery(q(`SELECT count(*) FROM "venues"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := svc.CountVenues(db)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
