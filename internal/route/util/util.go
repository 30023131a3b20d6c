package util

import (
	"fmt"
	"log"
	"net/http"
)

// RespondApology writes a plain error response with a status code and a
// short human-readable message.
func RespondApology(writer http.ResponseWriter, status int, message string) {
	writer.WriteHeader(status)
	fmt.Fprintf(writer, "%d: %s\n", status, message)
}

func RespondInternalServerError(writer http.ResponseWriter, err error) {
	writer.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(writer, "Internal Server Error\n")
	log.Printf("internal error: %+v\n", err)
}

func RespondValidationError(writer http.ResponseWriter, message string) {
	RespondApology(writer, http.StatusBadRequest, message)
}

func RespondForbidden(writer http.ResponseWriter, message string) {
	RespondApology(writer, http.StatusForbidden, message)
}

func RespondNotFound(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(writer, "404: Not Found\n")
}
