package browser

const helpMarkdown = `# userdeck

Browse randomly generated user profiles.

## Fetching

Type how many profiles to ask for in the **Count** field and press
` + "`enter`" + `, or press ` + "`g`" + ` from the card list. New profiles are added
to the end of the list and the count goes back to 10.

Fetches that fail are written to the log file and leave the list as it was.

## Cards

| Key | Action |
| --- | --- |
| ` + "`↑`/`k`, `↓`/`j`" + ` | select a card |
| ` + "`m`" + ` | email the selected profile |
| ` + "`c`" + ` | call the selected profile |
| ` + "`x`" + ` | remove the selected card |
| ` + "`tab`" + ` | switch between the count field and the cards |
| ` + "`?`" + ` | toggle this help |
| ` + "`q`" + ` | quit |
`
