// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Issue identifiers. Values start at 1 so the zero Id is never valid.
const (
	FileNotFoundId Id = iota + 1
	InvalidSelectionId
	InvalidDelimiterId
	InvalidUsageId
	CommandNotFoundId
	ConfigLoadFailedId
	ScriptExecutionFailedId
)

type (
	// Id identifies an entry in the issue catalog.
	Id int

	// MarkdownMsg is the Markdown body of an issue.
	MarkdownMsg string

	// HttpLink is a documentation or reference URL.
	HttpLink string

	// Issue is a catalog entry with remediation guidance.
	Issue struct {
		id    Id          // ID used to lookup the issue
		mdMsg MarkdownMsg // Markdown text that will be rendered
		links []HttpLink  // listed under "See also" when rendered
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue as terminal Markdown using the glamour style at
// stylePath ("dark", "light", "notty", "auto" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.markdown(), stylePath)
}

// markdown returns the issue body followed by its links.
func (i *Issue) markdown() string {
	md := string(i.mdMsg)
	if len(i.links) == 0 {
		return md
	}

	md += "\n\n## See also\n"
	for _, link := range i.links {
		md += "- <" + string(link) + ">\n"
	}
	return md
}

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# Some input files could not be read

Every file that failed was reported as ` + "`<file>: <reason>`" + ` and skipped;
the remaining files were still processed.

## Things you can try:
- Check the spelling of the path and that it is relative to the current directory
- Use ` + "`-`" + ` to read standard input in place of a file
- Check that you have read permission on the file`,
	}

	invalidSelectionIssue = &Issue{
		id: InvalidSelectionId,
		mdMsg: `
# Invalid selection list

A list is made of comma separated tokens. Each token is either a position
` + "`N`" + ` or a range ` + "`A-B`" + `. Positions start at 1 and ranges need
the first number to be lower than the second.

## Examples:
~~~
$ textr cut -f 1,3 data.tsv      # first and third fields
$ textr cut -d , -f 2-4 data.csv # fields 2, 3 and 4
$ textr cut -c 1-8 log.txt       # first eight characters
~~~

## Not supported:
- Open ranges such as ` + "`3-`" + ` or ` + "`-5`" + `
- Zero positions such as ` + "`0`" + ` or ` + "`0-2`" + `
- Spaces or signs inside the list`,
		links: []HttpLink{"https://pubs.opengroup.org/onlinepubs/9799919799/utilities/cut.html"},
	}

	invalidDelimiterIssue = &Issue{
		id: InvalidDelimiterId,
		mdMsg: `
# Invalid delimiter

The field delimiter must be exactly one byte.

## Things you can try:
- Quote shell special characters: ` + "`-d ';'`" + ` or ` + "`-d ' '`" + `
- Leave ` + "`-d`" + ` out to split on TAB, or set ` + "`cut.delimiter`" + ` in your config
- Use ` + "`-c`" + ` to select characters when your separator is a multi-byte character`,
	}

	invalidUsageIssue = &Issue{
		id: InvalidUsageId,
		mdMsg: `
# Invalid flags or arguments

The command was rejected before reading any input.

## Things you can try:
- Run the command with ` + "`--help`" + ` to list its flags
- Check for flags that cannot be combined (for example ` + "`cut -f`" + ` and ` + "`cut -b`" + `)`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The shell could not find the command in the built-in utilities or in your PATH.

## Things you can try:
- List the built-in utilities:
~~~
$ textr --help
~~~
- Check that external programs are installed and in your PATH`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or did not match the schema.
Built-in defaults were used instead.

## Things you can try:
- Show where textr looks for its configuration:
~~~
$ textr config path
~~~
- Check the file for CUE syntax errors
- Write a fresh file with the defaults:
~~~
$ textr config init
~~~

## Example config.cue:
~~~cue
cut: delimiter: ","
head: lines: 20
ui: verbose: false
log: level: "warn"
~~~`,
		links: []HttpLink{"https://cuelang.org/docs/"},
	}

	scriptExecutionFailedIssue = &Issue{
		id: ScriptExecutionFailedId,
		mdMsg: `
# Script execution failed!

The shell script could not be parsed or one of its commands failed.

## Things you can try:
- Run the script with ` + "`textr --verbose sh`" + ` to see debug output
- Check the script for syntax errors
- Run failing commands on their own to narrow the problem down`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():          fileNotFoundIssue,
		invalidSelectionIssue.Id():      invalidSelectionIssue,
		invalidDelimiterIssue.Id():      invalidDelimiterIssue,
		invalidUsageIssue.Id():          invalidUsageIssue,
		commandNotFoundIssue.Id():       commandNotFoundIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		scriptExecutionFailedIssue.Id(): scriptExecutionFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
	return values
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
