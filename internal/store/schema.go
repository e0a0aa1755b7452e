package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS household (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    rent        REAL NOT NULL DEFAULT 0,
    rent_mode   TEXT NOT NULL DEFAULT 'fair'
);

CREATE TABLE IF NOT EXISTS people (
    id               TEXT PRIMARY KEY,
    position         INTEGER NOT NULL,
    name             TEXT NOT NULL,
    pay_period       TEXT NOT NULL,
    groceries        REAL NOT NULL DEFAULT 0,
    gas              REAL NOT NULL DEFAULT 0,
    savings_rate     REAL NOT NULL DEFAULT 0,
    wants_rate       REAL NOT NULL DEFAULT 0,
    starting_debt    REAL NOT NULL DEFAULT 0,
    starting_savings REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS paychecks (
    person_id   TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    amount      REAL NOT NULL,
    PRIMARY KEY (person_id, position)
);

CREATE TABLE IF NOT EXISTS bills (
    person_id   TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    label       TEXT NOT NULL,
    amount      REAL NOT NULL,
    PRIMARY KEY (person_id, position)
);
`
