package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parser turns one configuration source into side effects (aliases,
// groups, relations, bindings) plus a flat top-level action list, per spec
// §4.E. A child parser created by a `source` statement carries upperParser
// so recursive sourcing can be detected by walking the chain.
type Parser struct {
	lexer *lexer
	cur   token

	Aliases   *registry
	Groups    *registry
	Relations *RelationList
	Bindings  *BindingTable
	Settings  *Settings

	upperParser *Parser
	sourcePath  string

	errors []*ParseError
}

// NewParser constructs a root parser over source, sharing fresh registries.
func NewParser(file, source string, settings *Settings) *Parser {
	return &Parser{
		lexer:     newLexer(file, source),
		Aliases:   newRegistry(ParseMaxAliases),
		Groups:    newRegistry(ParseMaxAliases),
		Relations: NewRelationList(),
		Bindings:  NewBindingTable(),
		Settings:  settings,
		sourcePath: file,
	}
}

func (p *Parser) childParser(file, source string) *Parser {
	return &Parser{
		lexer:       newLexer(file, source),
		Aliases:     p.Aliases,
		Groups:      p.Groups,
		Relations:   p.Relations,
		Bindings:    p.Bindings,
		Settings:    p.Settings,
		upperParser: p,
		sourcePath:  file,
	}
}

func (p *Parser) isRecursiveSource(file string) bool {
	for up := p; up != nil; up = up.upperParser {
		if up.sourcePath == file {
			return true
		}
	}
	return false
}

func (p *Parser) addError(t token, format string, args ...interface{}) {
	if len(p.errors) >= ParseMaxErrorCount {
		return
	}
	p.errors = append(p.errors, &ParseError{
		File: p.lexer.file, Line: t.line + 1, Column: t.column + 1,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errors returns every accumulated parse error across this parser and any
// parser it transitively sourced (spec: "Error counts accumulate upward").
func (p *Parser) Errors() []*ParseError {
	all := append([]*ParseError{}, p.lexer.errors...)
	all = append(all, p.errors...)
	return all
}

func (p *Parser) advance() { p.cur = p.lexer.next() }

// skipTerminators consumes any run of ',' and newline tokens.
func (p *Parser) skipTerminators() {
	for p.cur.kind == tokComma || p.cur.kind == tokNewline {
		p.advance()
	}
}

// resolveAlias performs the single, non-recursive alias substitution rule
// (spec §4.E "Alias resolution").
func (p *Parser) resolveAlias(word string) string {
	if v, ok := p.Aliases.get(word); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return word
}

// Parse runs the parser to EOF, returning the flat top-level action list
// (spec §4.E top-level grammar: a sequence of top statements).
func (p *Parser) Parse() ActionList {
	p.advance()
	var out ActionList
	for {
		p.skipTerminators()
		if p.cur.kind == tokEOF {
			break
		}
		p.parseTop(&out)
	}
	return out
}

// parseTop parses exactly one top-level statement, appending any produced
// action to out.
func (p *Parser) parseTop(out *ActionList) {
	if p.cur.kind == tokLBracket {
		// '[' INTEGER ']' keycode trigger of a binding.
		p.parseBinding(out)
		return
	}
	if p.cur.kind != tokWord {
		p.addError(p.cur, "expected a statement, found %q", p.cur.text)
		p.advance()
		return
	}
	word := p.resolveAlias(p.cur.text)

	switch word {
	case "alias":
		p.parseAlias()
		return
	case "group":
		p.parseGroup()
		return
	case "source":
		p.parseSource(out)
		return
	case "unbind":
		p.parseUnbind()
		return
	case "ungroup":
		p.advance()
		if p.cur.kind != tokWord {
			p.addError(p.cur, "expected a group name after 'ungroup'")
			return
		}
		p.Groups.delete(p.cur.text)
		*out = append(*out, Action{Type: ActionUngroup, Data: []DataValue{{Kind: DataString, Str: p.cur.text}}})
		p.advance()
		return
	}

	if isBindingStart(word) {
		p.parseBinding(out)
		return
	}

	// Fall through to "relate"/"unrelate" and the general action catalog:
	// both are matched by the same predictive walk (spec §4.E "Action
	// matching"), since their templates ("relate R", "unrelate") sit in
	// actionCatalog like any other action.
	if a, ok := p.parseAction(); ok {
		*out = append(*out, a)
	}
}

func (p *Parser) parseAlias() {
	p.advance() // 'alias'
	if p.cur.kind != tokWord {
		p.addError(p.cur, "expected a name after 'alias'")
		return
	}
	name := p.cur.text
	p.advance()
	if p.cur.kind != tokWord || p.cur.text != "=" {
		p.addError(p.cur, "expected '=' after 'alias %s'", name)
		return
	}
	p.advance()
	if p.cur.kind != tokWord && p.cur.kind != tokString {
		p.addError(p.cur, "expected a value after 'alias %s ='", name)
		return
	}
	p.Aliases.set(name, p.cur.text)
	p.advance()
}

func (p *Parser) parseGroup() {
	p.advance() // 'group'
	if p.cur.kind != tokWord {
		p.addError(p.cur, "expected a name after 'group'")
		return
	}
	name := p.cur.text
	p.advance()
	var body ActionList
	p.parseTopBlock(&body)
	p.Groups.set(name, &body)
}

func (p *Parser) parseSource(out *ActionList) {
	p.advance() // 'source'
	if p.cur.kind != tokString && p.cur.kind != tokWord {
		p.addError(p.cur, "expected a file path after 'source'")
		return
	}
	path := p.cur.text
	p.advance()

	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(filepath.Dir(p.lexer.file), path)
	}
	if p.isRecursiveSource(abs) {
		p.addError(p.cur, "recursive source of %q", abs)
		return
	}
	contents, err := os.ReadFile(abs)
	if err != nil {
		p.addError(p.cur, "cannot open source file %q: %v", abs, err)
		return
	}
	child := p.childParser(abs, string(contents))
	childActions := child.Parse()
	*out = append(*out, childActions...)
	p.errors = append(p.errors, child.Errors()...)
}

func (p *Parser) parseUnbind() {
	p.advance() // 'unbind'
	modifiers := p.parseModifierChain()
	isKey, code, ok := p.parseTriggerCode()
	if !ok {
		p.addError(p.cur, "expected a button, key or '[' keycode ']' after 'unbind'")
		return
	}
	p.Bindings.Unbind(isKey, modifiers, code)
}

// isBindingStart reports whether word can only begin a binding (spec
// §4.E "binding" grammar): the "release"/"transparent" prefixes, a
// modifier constant, a named button or key symbol, or a '#'-prefixed or
// digit-led integer (the start of a modifier chain). A bracketed keycode
// is not a word; parseTop recognizes it before calling this. No action
// template starts with any of these spellings, so there is no ambiguity
// with action-seq parsing.
func isBindingStart(word string) bool {
	if word == "release" || word == "transparent" {
		return true
	}
	if _, ok := modifierConstants[word]; ok {
		return true
	}
	if _, ok := buttonByName[word]; ok {
		return true
	}
	if _, ok := keysymByName[word]; ok {
		return true
	}
	if strings.HasPrefix(word, "#") {
		return true
	}
	if len(word) > 0 && (word[0] >= '0' && word[0] <= '9') {
		return true
	}
	return false
}

func (p *Parser) parseBinding(out *ActionList) {
	b := &Binding{}
	for {
		if p.cur.kind != tokWord {
			break
		}
		switch p.resolveAlias(p.cur.text) {
		case "release":
			b.IsRelease = true
			p.advance()
			continue
		case "transparent":
			b.Transparent = true
			p.advance()
			continue
		}
		break
	}
	b.Modifiers = p.parseModifierChain()
	isKey, code, ok := p.parseTriggerCode()
	if !ok {
		p.addError(p.cur, "expected a button, key or '[' keycode ']' to bind")
		return
	}
	b.IsKey = isKey
	b.Code = code
	p.parseTopBlock(&b.Actions)
	p.Bindings.Bind(b)

	kind := DataButtonBinding
	typ := ActionButtonBinding
	if isKey {
		kind = DataKeyBinding
		typ = ActionKeyBinding
	}
	*out = append(*out, Action{Type: typ, Data: []DataValue{{Kind: kind, Bind: b}}})
}

// parseModifierChain consumes a "INTEGER ('+' INTEGER)*" run as long as
// each term resolves as a modifier/bool constant or integer literal,
// stopping once the next token is the trigger word itself.
func (p *Parser) parseModifierChain() uint32 {
	var mods uint32
	for {
		if p.cur.kind != tokWord {
			return mods
		}
		word := p.resolveAlias(p.cur.text)
		// The trigger itself (button/key/'[') ends the modifier chain.
		if _, isBtn := buttonByName[word]; isBtn {
			return mods
		}
		if _, isKey := keysymByName[word]; isKey {
			if _, isMod := modifierConstants[word]; !isMod {
				return mods
			}
		}
		term, err := parseIntegerTerm(word)
		if err != nil {
			return mods
		}
		mods |= uint32(term.value)
		p.advance()
		if p.cur.kind != tokPlus {
			return mods
		}
		p.advance()
	}
}

// parseTriggerCode consumes the BUTTON | KEYSYM | '[' INTEGER ']' terminal.
func (p *Parser) parseTriggerCode() (isKey bool, code uint32, ok bool) {
	if p.cur.kind == tokLBracket {
		p.advance()
		if p.cur.kind != tokWord {
			return false, 0, false
		}
		term, err := parseIntegerTerm(p.cur.text)
		if err != nil {
			return false, 0, false
		}
		p.advance()
		if p.cur.kind == tokRBracket {
			p.advance()
		}
		return true, uint32(term.value), true
	}
	if p.cur.kind != tokWord {
		return false, 0, false
	}
	word := p.resolveAlias(p.cur.text)
	if v, isBtn := buttonByName[word]; isBtn {
		p.advance()
		return false, uint32(v), true
	}
	if v, isKey := keysymByName[word]; isKey {
		p.advance()
		return true, v, true
	}
	return false, 0, false
}

// parseTopBlock parses `'(' top (',' | NL)* ')'` or a bare `action-seq`
// (spec §4.E "top-block").
func (p *Parser) parseTopBlock(out *ActionList) {
	if p.cur.kind == tokLParen {
		p.advance()
		for {
			p.skipTerminators()
			if p.cur.kind == tokRParen || p.cur.kind == tokEOF {
				break
			}
			p.parseTop(out)
		}
		if p.cur.kind == tokRParen {
			p.advance()
		}
		return
	}
	// Bare action-seq: one or more actions separated by commas.
	for {
		if a, ok := p.parseAction(); ok {
			*out = append(*out, a)
		}
		if p.cur.kind != tokComma {
			break
		}
		p.advance()
	}
}

// parseAction runs the predictive action-template walk (spec §4.E "Action
// matching"): narrow candidates on the first word, advance candidates on
// each subsequent word (absorbing a data value where a template expects
// one), and stop at a statement terminator once exactly one candidate has
// reached its end.
func (p *Parser) parseAction() (Action, bool) {
	candidates := actionCatalog
	var data []DataValue
	pos := 0

	for {
		next := make([]actionTemplate, 0, len(candidates))
		matchedOnThisWord := false

		if p.cur.kind != tokWord && pos == 0 {
			p.addError(p.cur, "expected an action")
			return Action{}, false
		}

		for _, c := range candidates {
			if pos >= len(c.words) {
				continue
			}
			w := c.words[pos]
			if w.kind == wordLiteral {
				if p.cur.kind == tokWord && p.resolveAlias(p.cur.text) == w.literal {
					next = append(next, c)
					matchedOnThisWord = true
				}
			} else {
				next = append(next, c)
			}
		}

		if len(next) == 0 {
			if pos == 0 {
				p.addError(p.cur, "unknown action starting with %q", p.cur.text)
				p.advance()
				return Action{}, false
			}
			break
		}

		// A word that matched a literal rules out the candidates that would
		// take it as a data value ("focus left" against "focus I").
		if matchedOnThisWord {
			var literal []actionTemplate
			for _, c := range next {
				if c.words[pos].kind == wordLiteral {
					literal = append(literal, c)
				}
			}
			next = literal
		}

		// If the surviving candidates want a literal and we matched it,
		// consume the word; if the position is a data marker, absorb a value
		// instead and keep the candidates that expect that kind of value.
		allData := true
		for _, c := range next {
			if c.words[pos].kind != wordData {
				allData = false
			}
		}
		if allData {
			v, ok := p.absorbDataValue(next[0].words[pos].data)
			if !ok {
				return Action{}, false
			}
			data = append(data, v)
			var sameKind []actionTemplate
			for _, c := range next {
				if c.words[pos].data == v.Kind {
					sameKind = append(sameKind, c)
				}
			}
			next = sameKind
		} else if matchedOnThisWord {
			p.advance()
		}

		candidates = next
		pos++

		if p.isStatementTerminator() {
			break
		}
	}

	var complete []actionTemplate
	for _, c := range candidates {
		if len(c.words) == pos {
			complete = append(complete, c)
		}
	}
	if len(complete) != 1 {
		p.addError(p.cur, "ambiguous or incomplete action (%d candidates)", len(complete))
		return Action{}, false
	}
	return Action{Type: complete[0].typ, Data: data}, true
}

func (p *Parser) isStatementTerminator() bool {
	return p.cur.kind == tokComma || p.cur.kind == tokNewline ||
		p.cur.kind == tokRParen || p.cur.kind == tokEOF
}

// absorbDataValue consumes the token(s) needed for one data-type marker.
func (p *Parser) absorbDataValue(kind DataKind) (DataValue, bool) {
	switch kind {
	case DataInt:
		var words []string
		for p.cur.kind == tokWord {
			words = append(words, p.resolveAlias(p.cur.text))
			p.advance()
			if p.cur.kind != tokPlus {
				break
			}
			p.advance()
		}
		if len(words) == 0 {
			p.addError(p.cur, "expected an integer")
			return DataValue{}, false
		}
		v, err := parseIntegerChain(words)
		if err != nil {
			p.addError(p.cur, "%v", err)
		}
		return DataValue{Kind: DataInt, Int: v}, true

	case DataString:
		if p.cur.kind != tokWord && p.cur.kind != tokString {
			p.addError(p.cur, "expected a string")
			return DataValue{}, false
		}
		s := p.cur.text
		p.advance()
		return DataValue{Kind: DataString, Str: s}, true

	case DataRelation:
		if p.cur.kind != tokWord && p.cur.kind != tokString {
			p.addError(p.cur, "expected instance,class before a relation body")
			return DataValue{}, false
		}
		instance, class := splitRelationPattern(p.cur.text)
		p.advance()
		rel := &Relation{Instance: instance, Class: class}
		p.parseTopBlock(&rel.Actions)
		p.Relations.Add(rel)
		return DataValue{Kind: DataRelation, Rel: rel}, true

	case DataButtonBinding, DataKeyBinding:
		isKey := kind == DataKeyBinding
		b := &Binding{IsKey: isKey}
		b.Modifiers = p.parseModifierChain()
		gotKey, code, ok := p.parseTriggerCode()
		if !ok {
			p.addError(p.cur, "expected a trigger for bind")
			return DataValue{}, false
		}
		b.IsKey = gotKey
		b.Code = code
		p.parseTopBlock(&b.Actions)
		p.Bindings.Bind(b)
		// The trigger decides the kind: "bind B" and "bind K" share the
		// "bind" word and are told apart here.
		if gotKey {
			return DataValue{Kind: DataKeyBinding, Bind: b}, true
		}
		return DataValue{Kind: DataButtonBinding, Bind: b}, true
	}
	return DataValue{}, false
}

// splitRelationPattern splits "instance,class" on an unescaped comma,
// treating a missing instance as "*" (spec §4.E "Data-value R").
func splitRelationPattern(s string) (instance, class string) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == ',' {
			sb.WriteByte(',')
			i++
			continue
		}
		if s[i] == ',' {
			return sb.String(), s[i+1:]
		}
		sb.WriteByte(s[i])
	}
	return "*", sb.String()
}
