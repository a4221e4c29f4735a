package mysql

const upsertBundleSQL = `
INSERT INTO bundles
  (id, destination, position, title, price_pp, start_date, end_date,
   flight, stay, activities, eco_note, visa_note, surge_note, badges, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  destination = VALUES(destination),
  position    = VALUES(position),
  title       = VALUES(title),
  price_pp    = VALUES(price_pp),
  start_date  = VALUES(start_date),
  end_date    = VALUES(end_date),
  flight      = VALUES(flight),
  stay        = VALUES(stay),
  activities  = VALUES(activities),
  eco_note    = VALUES(eco_note),
  visa_note   = VALUES(visa_note),
  surge_note  = VALUES(surge_note),
  badges      = VALUES(badges),
  raw         = COALESCE(VALUES(raw), bundles.raw)
`

// Placeholders for the keep-list are appended by the repo.
const pruneGroupPrefix = `DELETE FROM bundles WHERE destination = ? AND id NOT IN `

const insertMissSQL = `
INSERT INTO ingest_misses (destination, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE seen_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const bundleColumns = `
  id, title, price_pp, start_date, end_date,
  flight, stay, activities, eco_note, visa_note, surge_note, badges
`

const groupSQL = `SELECT` + bundleColumns + `FROM bundles WHERE destination = ? ORDER BY position, id`

const bundleSQL = `SELECT` + bundleColumns + `FROM bundles WHERE id = ?`

// FIELD() keeps catalog order (santorini, tokyo, bali) without a lookup table.
const allSQL = `SELECT` + bundleColumns + `FROM bundles
ORDER BY FIELD(destination, 'santorini', 'tokyo', 'bali'), destination, position, id`
