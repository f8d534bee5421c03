package scraper

import (
	"strings"
	"testing"

	_ "time/tzdata"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, fixture string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fixture))
	require.NoError(t, err)

	return doc
}

// legRowsFixture is the detail-row sequence of one two-leg journey. Leg slots
// are announced at indices 0 and 2; index 1 never appears. The trailing first
// row without a slot index mimics malformed markup and must be skipped.
const legRowsFixture = `
<table>
	<tr class="first 0">
		<td class="station">Berlin Hbf</td>
		<td class="platform">12</td>
		<td class="time">ab 20:53<br><span class="delay">20:58</span></td>
		<td class="products"><a href="#">ICE  123</a><a href="#">  </a></td>
	</tr>
	<tr class="intermediate">
		<td class="station">Fußweg</td>
	</tr>
	<tr class="last 0">
		<td class="station">Hamburg Hbf</td>
		<td class="platform">7</td>
		<td class="time">an 22:10</td>
	</tr>
	<tr class="first 2">
		<td class="station">Hamburg Hbf</td>
		<td class="platform">5</td>
		<td class="time">ab 22:30</td>
		<td class="products"><a href="#">RE 8</a></td>
	</tr>
	<tr class="last 2">
		<td class="station">Kiel Hbf</td>
		<td class="time">an 23:40</td>
	</tr>
	<tr class="first">
		<td class="station">Nirgendwo</td>
	</tr>
</table>`

// reconcileBlockFixture carries the auxiliary links of one journey block: two
// usable detail links, one without an id parameter, and the print view link
// paired with the active slider name.
const reconcileBlockFixture = `
<div class="scheduledCon">
	<a class="arrowlink" href="details.exe?evaId=8011160&amp;rt=1">Berlin Hbf</a>
	<a class="arrowlink" href="details.exe?evaId=8002549">Hamburg  Hbf</a>
	<a class="arrowlink" href="details.exe?rt=1">Ohne Id</a>
	<a class="arrowlink" href="details.exe?evaId=9999999">Berlin Hbf</a>
	<span class="activeslider">Kiel Hbf</span>
	<a class="printview" href="print.exe?stationId=8000199">Druckansicht</a>
</div>`

// pageFixture is a full result page: block one is a complete bookable
// two-leg offer, block two lacks a continuation link, block three lacks any
// price, and block four is a live single-leg offer with a standard fare only.
const pageFixture = `
<html><body>
<div class="scheduledCon">
	<table>
		<tr class="first 0">
			<td class="station">Berlin Hbf</td>
			<td class="platform">12</td>
			<td class="time">ab 20:53<br><span class="delay">20:58</span></td>
			<td class="products"><a href="#">ICE  123</a></td>
		</tr>
		<tr class="last 0">
			<td class="station">Hamburg Hbf</td>
			<td class="platform">7</td>
			<td class="time">an 22:10</td>
		</tr>
		<tr class="first 2">
			<td class="station">Hamburg Hbf</td>
			<td class="time">ab 22:30</td>
			<td class="products"><a href="#">RE 8</a></td>
		</tr>
		<tr class="last 2">
			<td class="station">Kiel Hbf</td>
			<td class="time">an 23:40</td>
		</tr>
	</table>
	<a class="arrowlink" href="details.exe?evaId=8011160">Berlin Hbf</a>
	<a class="arrowlink" href="details.exe?evaId=8002549">Hamburg Hbf</a>
	<p class="farePep"><span class="fareOutput">19,90 EUR</span></p>
	<p class="fareStd"><span class="fareOutput">29,90 EUR</span></p>
	<a href="https://reiseauskunft.bahn.de/bin/query.exe/dn?ld=1234&amp;seqnr=1&amp;ident=ab.cd">Return</a>
</div>
<div class="scheduledCon">
	<table>
		<tr class="first 0">
			<td class="station">Berlin Hbf</td>
			<td class="time">ab 21:00</td>
		</tr>
		<tr class="last 0">
			<td class="station">Hamburg Hbf</td>
			<td class="time">an 22:40</td>
		</tr>
	</table>
	<p class="fareStd"><span class="fareOutput">17,90 EUR</span></p>
</div>
<div class="scheduledCon">
	<table>
		<tr class="first 0">
			<td class="station">Berlin Hbf</td>
			<td class="time">ab 21:30</td>
		</tr>
		<tr class="last 0">
			<td class="station">Hamburg Hbf</td>
			<td class="time">an 23:10</td>
		</tr>
	</table>
	<p class="fareStd"><span class="fareOutput">ausverkauft</span></p>
	<a href="https://reiseauskunft.bahn.de/bin/query.exe/dn?ld=1234">Back to offer selection</a>
</div>
<div class="liveCon">
	<table>
		<tr class="first 0">
			<td class="station">Berlin Hbf</td>
			<td class="time">ab 22:00</td>
		</tr>
		<tr class="last 0">
			<td class="station">Hamburg Hbf</td>
			<td class="time">an 23:40</td>
		</tr>
	</table>
	<p class="fareStd"><span class="fareOutput">39 EUR</span></p>
	<a href="https://reiseauskunft.bahn.de/bin/query.exe/dn?ld=1234&amp;seqnr=4">Back to offer selection</a>
</div>
</body></html>`
