package Controllers

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"Taller/Models"
)

// ErrorLogEntry is one parsed line of the operation error log
type ErrorLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Method    string    `json:"method"`
	Message   string    `json:"message"`
}

// GetErrorLog returns the operation error log, newest first. Query
// params: limit (default 100), metodo (exact operation name filter).
func GetErrorLog(ctx *fiber.Ctx) error {
	limit := 100
	if v, err := strconv.Atoi(ctx.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	methodFilter := ctx.Query("metodo")

	file, err := os.Open(Models.ErrorLogPath())
	if err != nil {
		if os.IsNotExist(err) {
			return ctx.JSON([]ErrorLogEntry{})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read error log"})
	}
	defer file.Close()

	var entries []ErrorLogEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry, ok := parseErrorLogLine(scanner.Text())
		if !ok {
			continue
		}
		if methodFilter != "" && entry.Method != methodFilter {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read error log"})
	}

	// newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return ctx.JSON(fiber.Map{
		"total":   len(entries),
		"entries": entries,
	})
}

// parseErrorLogLine splits one log line of the form
// "2006-01-02 15:04:05 - Método: X - Error general: msg".
func parseErrorLogLine(line string) (ErrorLogEntry, bool) {
	parts := strings.SplitN(line, " - ", 3)
	if len(parts) != 3 {
		return ErrorLogEntry{}, false
	}
	ts, err := time.Parse("2006-01-02 15:04:05", parts[0])
	if err != nil {
		return ErrorLogEntry{}, false
	}
	method, ok := strings.CutPrefix(parts[1], "Método: ")
	if !ok {
		return ErrorLogEntry{}, false
	}
	message, ok := strings.CutPrefix(parts[2], "Error general: ")
	if !ok {
		return ErrorLogEntry{}, false
	}
	return ErrorLogEntry{Timestamp: ts, Method: method, Message: message}, true
}
