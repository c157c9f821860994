package screener

var HtmlPage = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Crypto Futures Screener</title>
    <style>
        body { font-family: monospace; background: #111; color: #ddd; margin: 20px; }
        h2 { color: #fff; }
        table { border-collapse: collapse; margin-top: 10px; width: 100%; }
        th, td { border: 1px solid #444; padding: 5px 8px; text-align: right; }
        th { background: #222; cursor: default; }
        td:first-child, th:first-child { text-align: left; }
        .up { color: #4caf50; }
        .down { color: #ef5350; }
        .new { background: #394; color: #fff; padding: 1px 5px; border-radius: 3px; font-size: 11px; }
        #meta { color: #888; }
    </style>
</head>
<body>
    <h2>Binance Futures USDT-M | FDV &gt;$100M | Sorted by 30D%</h2>
    <div id="meta">loading...</div>
    <table id="coinTable">
        <thead>
            <tr>
                <th>Symbol</th>
                <th>Price</th>
                <th>MCap (M)</th>
                <th>FDV (M)</th>
                <th>24h Vol (M)</th>
                <th>D1%</th>
                <th>30D%</th>
                <th>Q4 Low</th>
                <th>Bounce</th>
            </tr>
        </thead>
        <tbody></tbody>
    </table>

<script>
function pct(v) {
    const cls = v >= 0 ? "up" : "down";
    return '<span class="' + cls + '">' + (v >= 0 ? "+" : "") + v.toFixed(1) + '%</span>';
}

function money(v) {
    return "$" + v.toLocaleString("en-US", {maximumFractionDigits: 0});
}

async function load() {
    const resp = await fetch("/api/report");
    if (!resp.ok) {
        document.getElementById("meta").textContent = "report failed: " + resp.status;
        return;
    }
    const report = await resp.json();

    document.getElementById("meta").textContent =
        "Generated " + report.generatedAt + " | " + report.rows.length +
        " coins | " + report.newCoins.length + " new";

    const tbody = document.querySelector("#coinTable tbody");
    tbody.innerHTML = "";
    report.rows.forEach(row => {
        const tr = document.createElement("tr");
        const price = row.price < 1 ? row.price.toFixed(4) : row.price.toFixed(2);
        const low = row.q4Low === null ? "N/A" :
            (row.q4Low < 1 ? row.q4Low.toFixed(4) : row.q4Low.toFixed(2));
        const bounce = row.bounce === null ? "N/A" : "+" + row.bounce.toFixed(0) + "%";
        tr.innerHTML =
            "<td>" + row.symbol + (row.isNew ? ' <span class="new">NEW</span>' : "") + "</td>" +
            "<td>$" + price + "</td>" +
            "<td>" + (row.mcap > 0 ? money(row.mcap) : "N/A") + "</td>" +
            "<td>" + money(row.fdv) + "</td>" +
            "<td>" + money(row.volume) + "</td>" +
            "<td>" + pct(row.d1) + "</td>" +
            "<td>" + pct(row.d30) + "</td>" +
            "<td>" + low + "</td>" +
            "<td>" + bounce + "</td>";
        tbody.appendChild(tr);
    });
}

load();
</script>
</body>
</html>
`
