package repository

// Postgres error code raised on UNIQUE constraint violations.
const uniqueViolation = "23505"
