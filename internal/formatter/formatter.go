// package formatter provides functions to export catalogue data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/elmi/cine/internal/models"
)

// FormatCreneau renders a time slot as "Lundi 20:00".
//
// The service sometimes reports start times with seconds; the display keeps
// only hours and minutes.
func FormatCreneau(c models.Creneau) string {
	heure := c.HeureDebut
	if len(heure) > 5 {
		heure = heure[:5]
	}
	return fmt.Sprintf("%s %s", c.Jour.Label(), heure)
}

// FilmsToCSV converts a film list to CSV with columns: ID, Titre, Duree, Langue, Realisateur, AgeMin, SousTitre
func FilmsToCSV(films []models.Film) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Titre", "Duree", "Langue", "Realisateur", "AgeMin", "SousTitre"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, film := range films {
		ageMin := ""
		if film.AgeMin > 0 {
			ageMin = strconv.Itoa(film.AgeMin)
		}
		record := []string{
			strconv.FormatInt(film.ID, 10),
			film.Titre,
			strconv.Itoa(film.Duree),
			film.Langue,
			film.Realisateur,
			ageMin,
			film.SousTitre,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// CinemasToCSV converts a cinema list to CSV with columns: ID, Nom, Adresse, Ville
func CinemasToCSV(cinemas []models.Cinema) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Nom", "Adresse", "Ville"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, cinema := range cinemas {
		record := []string{
			strconv.FormatInt(cinema.ID, 10),
			cinema.Nom,
			cinema.Adresse,
			cinema.Ville,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// FilmToMarkdown converts a film detail to Markdown, including its programmations.
func FilmToMarkdown(film *models.Film) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", film.Titre))
	buf.WriteString(fmt.Sprintf("**Durée**: %d minutes\n", film.Duree))
	if film.Langue != "" {
		buf.WriteString(fmt.Sprintf("**Langue**: %s\n", film.Langue))
	}
	if film.Realisateur != "" {
		buf.WriteString(fmt.Sprintf("**Réalisateur**: %s\n", film.Realisateur))
	}
	if film.AgeMin > 0 {
		buf.WriteString(fmt.Sprintf("**Âge minimum**: %d ans\n", film.AgeMin))
	}
	if film.SousTitre != "" {
		buf.WriteString(fmt.Sprintf("**Sous-titres**: %s\n", film.SousTitre))
	}

	buf.WriteString("\n## Programmations\n\n")
	if len(film.Programmations) == 0 {
		buf.WriteString("Aucune programmation disponible.\n")
		return buf.Bytes()
	}

	for _, prog := range film.Programmations {
		buf.WriteString(fmt.Sprintf("- **%s** (%s, %s) du %s au %s:", prog.CinemaNom, prog.CinemaAdresse, prog.CinemaVille, prog.DateDeb, prog.DateFin))
		for _, creneau := range prog.Creneaux {
			buf.WriteString(fmt.Sprintf(" %s,", FormatCreneau(creneau)))
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// FilmsToText converts a film list to plain text, one film per line.
func FilmsToText(films []models.Film) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Films: %d\n\n", len(films)))
	for i, film := range films {
		buf.WriteString(fmt.Sprintf("%d. %s (%d min, %s) • %s\n", i+1, film.Titre, film.Duree, film.Langue, film.Realisateur))
	}

	return buf.Bytes()
}

// CinemasToText converts a cinema list to plain text, one cinema per line.
func CinemasToText(cinemas []models.Cinema) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Cinémas: %d\n\n", len(cinemas)))
	for i, cinema := range cinemas {
		buf.WriteString(fmt.Sprintf("%d. %s • %s, %s\n", i+1, cinema.Nom, cinema.Adresse, cinema.Ville))
	}

	return buf.Bytes()
}

// WriteExport writes formatted data to a file, creating or truncating it.
func WriteExport(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
