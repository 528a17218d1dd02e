package Models

import (
	"fmt"
	"log"
	"os"
	"time"
)

// ErrorLogPath returns the append-only error log file, ERROR_LOG_PATH
// or errores.txt next to the binary.
func ErrorLogPath() string {
	if path := os.Getenv("ERROR_LOG_PATH"); path != "" {
		return path
	}
	return "errores.txt"
}

// LogOperationError appends one line per persistence failure:
//
//	2024-01-02 15:04:05 - Método: CreateClient - Error general: <msg>
//
// The line format is what the workshop's existing tooling greps for,
// keep it stable. No rotation.
func LogOperationError(method string, opErr error) {
	file, err := os.OpenFile(ErrorLogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening error log: %v\n", err)
		return
	}
	defer file.Close()

	line := fmt.Sprintf("%s - Método: %s - Error general: %v\n",
		time.Now().Format("2006-01-02 15:04:05"), method, opErr)
	if _, err := file.WriteString(line); err != nil {
		log.Printf("Error writing to error log: %v\n", err)
	}
}
