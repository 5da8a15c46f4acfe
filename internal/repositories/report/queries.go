package report

// SQLite has no ANY, so "> ANY (set)" becomes "> (SELECT MIN(...))". An empty
// set yields NULL and the comparison filters every row, as ANY would.
const (
	queryCharactersByClassAndCampaign = `
SELECT c.char_id, cl.class_id, sc.subclass_id, g.game_id
FROM characters c
JOIN subclass sc ON c.subclass_id = sc.subclass_id
JOIN class cl ON sc.class_id = cl.class_id
JOIN game g ON c.game_id = g.game_id
ORDER BY cl.class_id, c.char_id`

	queryClassesWithMostSubclasses = `
SELECT cl.class_id, COUNT(sc.subclass_id) AS subclass_count
FROM class cl
JOIN subclass sc ON cl.class_id = sc.class_id
GROUP BY cl.class_id
HAVING COUNT(sc.subclass_id) > (
    SELECT MIN(cnt) FROM (
        SELECT COUNT(c.char_id) AS cnt
        FROM characters c
        JOIN subclass sc3 ON c.subclass_id = sc3.subclass_id
        GROUP BY sc3.class_id
    )
)
ORDER BY subclass_count DESC, cl.class_id`

	queryAboveAverageLevelBySpecies = `
SELECT c1.char_id, c1.lvl, ss.species_id
FROM characters c1
JOIN subspecies ss ON c1.subspecies_id = ss.subspecies_id
WHERE c1.lvl > (
    SELECT AVG(c2.lvl)
    FROM characters c2
    JOIN subspecies ss2 ON c2.subspecies_id = ss2.subspecies_id
    WHERE ss2.species_id = ss.species_id
)
ORDER BY ss.species_id, c1.lvl DESC, c1.char_id`

	queryAllPlayersAndCharacters = `
SELECT p.player_id AS player_id, p.fname AS fname, c.char_id AS char_id
FROM player p
LEFT JOIN characters c ON p.player_id = c.player_id
UNION
SELECT p.player_id, p.fname, c.char_id
FROM player p
RIGHT JOIN characters c ON p.player_id = c.player_id
ORDER BY player_id, char_id`

	queryPopularSettingsAndMilitary = `
SELECT c.char_id AS char_id, 'Popular Setting' AS reason, g.setting AS detail
FROM characters c
JOIN game g ON c.game_id = g.game_id
WHERE g.setting IN ('Forgotten Realms', 'Eberron', 'Dragonlance')
UNION
SELECT c.char_id, 'Military Background', c.bg_id
FROM characters c
WHERE c.bg_id = 'Soldier'
ORDER BY char_id, reason`

	queryCharacterSpeciesAndSize = `
SELECT c.char_id, sp.species_id, sp.species_size
FROM characters c
JOIN subspecies ss ON c.subspecies_id = ss.subspecies_id
JOIN species sp ON ss.species_id = sp.species_id
ORDER BY sp.species_size, sp.species_id, c.char_id`

	queryPlayerCharacterCounts = `
SELECT p.player_id, p.fname, COUNT(c.char_id) AS character_count
FROM player p
LEFT JOIN characters c ON p.player_id = c.player_id
GROUP BY p.player_id, p.fname
ORDER BY character_count DESC, p.fname`

	queryCampaignParticipation = `
SELECT g.game_id, g.setting, COUNT(DISTINCT c.player_id) AS num_players
FROM game g
LEFT JOIN characters c ON g.game_id = c.game_id
GROUP BY g.game_id, g.setting
ORDER BY num_players DESC, g.game_id`

	// division by an empty characters table yields NULL, reported as 0
	queryClassDistribution = `
SELECT cl.class_id, COUNT(c.char_id) AS character_count,
       COALESCE(ROUND(COUNT(c.char_id) * 100.0 / (SELECT COUNT(*) FROM characters), 2), 0) AS percentage
FROM class cl
LEFT JOIN subclass sc ON cl.class_id = sc.class_id
LEFT JOIN characters c ON sc.subclass_id = c.subclass_id
GROUP BY cl.class_id
ORDER BY character_count DESC, cl.class_id`

	queryCharacterAbilityScores = `
SELECT c.char_id, c.s_str, c.s_dex, c.s_con, c.s_int, c.s_wis, c.s_cha, sc.class_id, ss.species_id
FROM characters c
JOIN subclass sc ON c.subclass_id = sc.subclass_id
JOIN subspecies ss ON c.subspecies_id = ss.subspecies_id
ORDER BY sc.class_id, c.char_id`
)
