package networking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	TableFilter = "filter"
	TableNAT    = "nat"

	ChainOutput = "OUTPUT"

	// dnsSourcePort is the DNS port we're redirecting from.
	dnsSourcePort = 53
)

const (
	IPTABLES_TMPL_UID        = "uid"
	IPTABLES_TMPL_NETWORK    = "network"
	IPTABLES_TMPL_DNS_PORT   = "dns_port"
	IPTABLES_TMPL_TRANS_PORT = "trans_port"
)

// Rule is a single "iptables -t <Table> -A <Chain> <Spec...>" invocation.
type Rule struct {
	Table string
	Chain string
	Spec  []string
}

func (r Rule) String() string {
	return fmt.Sprintf("-t %s -A %s %s", r.Table, r.Chain, strings.Join(r.Spec, " "))
}

// RuleParams holds the values substituted into the rule templates.
type RuleParams struct {
	ServiceUID       string
	TransPort        uint16
	DNSPort          uint16
	ExcludedNetworks []string
}

var (
	// Tor's own traffic and already accepted connections pass untouched.
	exceptionRuleTemplates = []Rule{
		{TableNAT, ChainOutput, []string{"-m", "owner", "--uid-owner", "{{uid}}", "-j", "RETURN"}},
		{TableFilter, ChainOutput, []string{"-m", "owner", "--uid-owner", "{{uid}}", "-j", "ACCEPT"}},
		{TableFilter, ChainOutput, []string{"-m", "state", "--state", "ESTABLISHED,RELATED", "-j", "ACCEPT"}},
	}

	// Applied once per excluded network, in list order.
	excludedNetworkRuleTemplates = []Rule{
		{TableNAT, ChainOutput, []string{"-d", "{{network}}", "-j", "RETURN"}},
		{TableFilter, ChainOutput, []string{"-d", "{{network}}", "-j", "ACCEPT"}},
	}

	redirectRuleTemplates = []Rule{
		{TableNAT, ChainOutput, []string{"-p", "udp", "--dport", strconv.Itoa(dnsSourcePort), "-j", "REDIRECT", "--to-ports", "{{dns_port}}"}},
		{TableNAT, ChainOutput, []string{"-p", "tcp", "-j", "REDIRECT", "--to-ports", "{{trans_port}}"}},
	}

	rejectRuleTemplates = []Rule{
		{TableFilter, ChainOutput, []string{"-j", "REJECT"}},
	}
)

// BuildRules renders the full ordered rule set for params.
func BuildRules(params RuleParams) []Rule {
	vars := map[string]interface{}{
		IPTABLES_TMPL_UID:        params.ServiceUID,
		IPTABLES_TMPL_DNS_PORT:   strconv.FormatUint(uint64(params.DNSPort), 10),
		IPTABLES_TMPL_TRANS_PORT: strconv.FormatUint(uint64(params.TransPort), 10),
	}

	rules := make([]Rule, 0, len(exceptionRuleTemplates)+2*len(params.ExcludedNetworks)+len(redirectRuleTemplates)+len(rejectRuleTemplates))
	rules = append(rules, processRules(exceptionRuleTemplates, vars)...)

	for _, network := range params.ExcludedNetworks {
		vars[IPTABLES_TMPL_NETWORK] = network
		rules = append(rules, processRules(excludedNetworkRuleTemplates, vars)...)
	}
	delete(vars, IPTABLES_TMPL_NETWORK)

	rules = append(rules, processRules(redirectRuleTemplates, vars)...)
	rules = append(rules, processRules(rejectRuleTemplates, vars)...)

	return rules
}

func processRules(templates []Rule, vars map[string]interface{}) []Rule {
	rules := make([]Rule, len(templates))

	for i, tmpl := range templates {
		spec := make([]string, len(tmpl.Spec))
		for j, part := range tmpl.Spec {
			spec[j] = processRulePart(part, vars)
		}

		rules[i] = Rule{
			Table: tmpl.Table,
			Chain: tmpl.Chain,
			Spec:  spec,
		}
	}

	return rules
}

func processRulePart(template string, vars map[string]interface{}) string {
	if !strings.Contains(template, "{{") {
		return template
	}

	t := fasttemplate.New(template, "{{", "}}")
	return t.ExecuteString(vars)
}
