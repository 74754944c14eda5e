package postgresql

import (
	"database/sql"
	"io/fs"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applique les migrations goose embarquées avant le démarrage du serveur.
func Migrate(dsn string, migrations fs.FS) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("Erreur d'ouverture de la connexion pour les migrations: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Dialecte goose invalide: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatalf("Échec des migrations: %v", err)
	}
	log.Println("Migrations appliquées")
}
