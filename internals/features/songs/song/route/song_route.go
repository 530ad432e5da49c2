package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	songController "pelayananku_backend/internals/features/songs/song/controller"
	versionController "pelayananku_backend/internals/features/songs/song_version/controller"
)

// SongRoutes memasang endpoint lagu beserta versi-versinya.
// Katalog lagu terbuka untuk semua user yang sudah login.
func SongRoutes(app fiber.Router, db *gorm.DB) {
	songCtrl := songController.NewSongController(db)
	versionCtrl := versionController.NewSongVersionController(db)

	// ===================== SONGS =====================
	app.Post("/songs", songCtrl.CreateSong)
	app.Get("/songs", songCtrl.GetAllSongs)
	app.Get("/songs/:songId", songCtrl.GetSongByID)
	app.Put("/songs/:songId", songCtrl.UpdateSong)
	app.Delete("/songs/:songId", songCtrl.DeleteSong)

	// ===================== SONG VERSIONS =====================
	app.Post("/songs/:songId/song-versions", versionCtrl.CreateSongVersion)
	app.Get("/songs/:songId/song-versions", versionCtrl.GetSongVersions)
	app.Get("/song-versions/:versionId", versionCtrl.GetSongVersionByID)
	app.Put("/song-versions/:versionId", versionCtrl.UpdateSongVersion)
	app.Delete("/song-versions/:versionId", versionCtrl.DeleteSongVersion)
}
