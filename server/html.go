package server

// indexHTML is the whole map UI: Leaflet map with status-colored markers, a
// boat list, a details panel, a trail overlay toggle and a recenter button.
// It bootstraps from /api/fleet and then follows /api/stream.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>BoatTracker Live Map</title>
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
    <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', Arial, sans-serif; background: #f0f4f8; color: #333; height: 100vh; display: flex; flex-direction: column; }

        #map-wrap { flex: 1; position: relative; min-height: 45vh; }
        #map { height: 100%; }

        .banner {
            position: absolute; top: 10px; left: 50%; transform: translateX(-50%);
            z-index: 1000; padding: 8px 16px; border-radius: 8px; font-size: 13px;
            background: rgba(0,0,0,0.75); color: #fff; display: none;
        }
        .banner.error { background: #d32f2f; display: block; }
        .banner.info { display: block; }

        .legend {
            position: absolute; top: 10px; right: 10px; z-index: 1000;
            background: rgba(255,255,255,0.95); padding: 10px; border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.25); font-size: 12px;
        }
        .legend-item { display: flex; align-items: center; margin-bottom: 4px; }
        .dot { width: 12px; height: 12px; border-radius: 6px; margin-right: 8px; }
        .legend-count { color: #666; margin-top: 4px; font-weight: 600; font-size: 11px; }

        .controls { position: absolute; bottom: 20px; right: 10px; z-index: 1000; display: flex; flex-direction: column; gap: 8px; }
        .controls button {
            padding: 8px 14px; border: none; border-radius: 8px; cursor: pointer;
            background: #0066cc; color: #fff; font-size: 13px; font-weight: 600;
            box-shadow: 0 2px 6px rgba(0,0,0,0.3);
        }
        .controls button.off { background: #607d8b; }

        #bottom { flex: 1; display: flex; min-height: 0; border-top: 1px solid #ddd; }
        .panel { flex: 1; overflow-y: auto; background: #fff; }
        .panel + .panel { border-left: 1px solid #ddd; }
        .panel h2 { font-size: 16px; padding: 12px 16px; border-bottom: 1px solid #ddd; color: #333; position: sticky; top: 0; background: #fff; }

        .boat-item { margin: 6px 8px; padding: 10px 12px; border-radius: 8px; border: 1px solid #e0e0e0; cursor: pointer; }
        .boat-item:hover { background: #f5f9ff; }
        .boat-item.selected { background: #e3f2fd; border-left: 4px solid #0066cc; }
        .boat-name { font-weight: 600; font-size: 15px; }
        .boat-sub { font-size: 12px; color: #999; margin-top: 3px; }
        .status-chip { float: right; font-size: 10px; font-weight: bold; padding: 2px 8px; border-radius: 10px; color: #fff; text-transform: uppercase; }
        .status-normal { background: #0066cc; }
        .status-offline { background: #9e9e9e; }
        .status-sos { background: #ff0000; }

        .detail-row { padding: 10px 16px; border-bottom: 1px solid #eee; }
        .detail-label { font-size: 11px; color: #666; text-transform: uppercase; letter-spacing: 0.5px; }
        .detail-value { font-size: 15px; font-weight: 500; margin-top: 3px; }
        .detail-value.sos-on { color: #d32f2f; font-weight: bold; }
        .detail-value.sos-off { color: #388e3c; font-weight: bold; }
        .placeholder { padding: 32px 16px; color: #999; text-align: center; font-size: 13px; }
    </style>
</head>
<body>
    <div id="map-wrap">
        <div id="map"></div>
        <div class="banner" id="banner"></div>
        <div class="legend">
            <div class="legend-item"><span class="dot" style="background:#0066cc"></span>Normal</div>
            <div class="legend-item"><span class="dot" style="background:#9e9e9e"></span>Offline</div>
            <div class="legend-item"><span class="dot" style="background:#ff0000"></span>SOS</div>
            <div class="legend-count" id="boat-count">0 boat(s)</div>
        </div>
        <div class="controls">
            <button id="trail-btn" class="off" onclick="toggleTrail()">Trail: off</button>
            <button onclick="recenter()">Recenter</button>
        </div>
    </div>

    <div id="bottom">
        <div class="panel">
            <h2>Boats</h2>
            <div id="boat-list"><div class="placeholder">Loading boats...</div></div>
        </div>
        <div class="panel">
            <h2>Boat Details</h2>
            <div id="details"><div class="placeholder">Select a boat to view details</div></div>
        </div>
    </div>

    <script>
        var map = L.map('map').setView([15.22, 120.58], 9);
        L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
            attribution: '&copy; OpenStreetMap contributors'
        }).addTo(map);

        var markerLayer = L.layerGroup().addTo(map);
        var trailLayer = L.layerGroup().addTo(map);

        var view = null;
        var selectedId = null;
        var trailOn = false;
        var fitted = false;

        var statusColors = { normal: '#0066cc', offline: '#9e9e9e', sos: '#ff0000' };

        function regionToBounds(region) {
            return [
                [region.centerLatitude - region.latitudeSpan / 2, region.centerLongitude - region.longitudeSpan / 2],
                [region.centerLatitude + region.latitudeSpan / 2, region.centerLongitude + region.longitudeSpan / 2]
            ];
        }

        function render(v) {
            view = v;
            renderBanner(v);
            renderMarkers(v);
            renderList(v);
            renderDetails(v);
            if (!fitted) {
                map.fitBounds(regionToBounds(v.region));
                fitted = true;
            }
            if (trailOn && selectedId) { loadTrail(selectedId, false); }
        }

        function renderBanner(v) {
            var banner = document.getElementById('banner');
            banner.className = 'banner';
            if (v.state === 'error') {
                banner.classList.add('error');
                banner.textContent = 'Feed error: ' + (v.error || 'unknown');
            } else if (v.state === 'loading') {
                banner.classList.add('info');
                banner.textContent = 'Connecting to feed...';
            } else if (v.state === 'empty' || (v.markers || []).length === 0) {
                banner.classList.add('info');
                banner.textContent = 'No boats with valid coordinates';
            }
        }

        function renderMarkers(v) {
            markerLayer.clearLayers();
            (v.markers || []).forEach(function(m) {
                var marker = L.circleMarker([m.latitude, m.longitude], {
                    radius: 9, weight: 2, color: '#fff',
                    fillColor: statusColors[m.status] || '#0066cc', fillOpacity: 0.95
                });
                marker.on('click', function() { select(m.id); });
                marker.bindTooltip(nameOf(m.id));
                marker.addTo(markerLayer);
            });
            document.getElementById('boat-count').textContent = (v.markers || []).length + ' boat(s)';
        }

        function nameOf(id) {
            var boat = (view.boats || []).find(function(b) { return b.id === id; });
            return boat ? boat.displayName : 'Boat ' + id;
        }

        function ageText(boat) {
            if (boat.ageSeconds < 0) { return 'Unknown age'; }
            if (boat.ageSeconds < 90) { return boat.ageSeconds + 's ago'; }
            return Math.round(boat.ageSeconds / 60) + 'm ago';
        }

        function renderList(v) {
            var list = document.getElementById('boat-list');
            var boats = v.boats || [];
            if (v.state === 'loading') { return; }
            if (boats.length === 0) {
                list.innerHTML = '<div class="placeholder">No boats available<br>Waiting for feed data...</div>';
                return;
            }
            list.innerHTML = '';
            boats.forEach(function(b) {
                var item = document.createElement('div');
                item.className = 'boat-item' + (b.id === selectedId ? ' selected' : '');
                item.innerHTML = '<span class="status-chip status-' + b.status + '">' + b.status + '</span>' +
                    '<div class="boat-name">' + b.displayName + '</div>' +
                    '<div class="boat-sub">' + ageText(b) + (b.plottable ? '' : ' &middot; no fix') + '</div>';
                item.onclick = function() { select(b.id); };
                list.appendChild(item);
            });
        }

        function renderDetails(v) {
            var panel = document.getElementById('details');
            if (!selectedId) {
                panel.innerHTML = '<div class="placeholder">Select a boat to view details</div>';
                return;
            }
            var boat = (v.boats || []).find(function(b) { return b.id === selectedId; });
            if (!boat) {
                panel.innerHTML = '<div class="placeholder">Boat no longer in feed</div>';
                return;
            }
            var latest = boat.latest || {};
            var sos = Number(latest.sos) === 1;
            var rows = [
                ['Boat ID', boat.id],
                ['Name', boat.displayName],
                ['Status', boat.status.toUpperCase()],
                ['Latitude', boat.plottable ? boat.latitude.toFixed(6) : 'N/A'],
                ['Longitude', boat.plottable ? boat.longitude.toFixed(6) : 'N/A'],
                ['Temperature', num(latest.temperature, '&deg;C')],
                ['Humidity', num(latest.humidity, '%')],
                ['Rain rate', num(latest.rainRate, ' mm/h')],
                ['Wind speed', num(latest.windSpeed, ' m/s')],
                ['RSSI', num(latest.rssi, ' dBm')],
                ['SNR', num(latest.snr, ' dB')],
                ['Counter', latest.counter !== undefined ? latest.counter : 'N/A'],
                ['Timestamp', latest.timestamp || 'N/A'],
                ['Sample age', ageText(boat)]
            ];
            var html = '';
            rows.forEach(function(r) {
                html += '<div class="detail-row"><div class="detail-label">' + r[0] + '</div>' +
                    '<div class="detail-value">' + r[1] + '</div></div>';
            });
            html += '<div class="detail-row"><div class="detail-label">SOS Status</div>' +
                '<div class="detail-value ' + (sos ? 'sos-on">ACTIVE' : 'sos-off">OK') + '</div></div>';
            panel.innerHTML = html;
        }

        function num(v, unit) {
            var f = parseFloat(v);
            return isNaN(f) ? 'N/A' : f.toFixed(2) + unit;
        }

        function select(id) {
            selectedId = id;
            if (view) { renderList(view); renderDetails(view); }
            if (trailOn) { loadTrail(id, true); }
        }

        function toggleTrail() {
            trailOn = !trailOn;
            var btn = document.getElementById('trail-btn');
            btn.textContent = 'Trail: ' + (trailOn ? 'on' : 'off');
            btn.className = trailOn ? '' : 'off';
            if (trailOn && selectedId) {
                loadTrail(selectedId, true);
            } else {
                trailLayer.clearLayers();
            }
        }

        function loadTrail(id, refit) {
            fetch('/api/boats/' + encodeURIComponent(id) + '/trail')
                .then(function(r) { return r.json(); })
                .then(function(data) {
                    trailLayer.clearLayers();
                    var pts = (data.points || []).map(function(p) { return [p.latitude, p.longitude]; });
                    if (pts.length > 0) {
                        L.polyline(pts, { color: '#ff6f00', weight: 3, opacity: 0.8 }).addTo(trailLayer);
                        pts.forEach(function(p) {
                            L.circleMarker(p, { radius: 3, color: '#ff6f00', fillOpacity: 1 }).addTo(trailLayer);
                        });
                    }
                    if (refit) { map.fitBounds(regionToBounds(data.region)); }
                })
                .catch(function(err) { console.error('trail load failed', err); });
        }

        function recenter() {
            if (trailOn && selectedId) {
                loadTrail(selectedId, true);
            } else if (view) {
                map.fitBounds(regionToBounds(view.region));
            }
        }

        function connectStream() {
            var stream = new EventSource('/api/stream');
            stream.onmessage = function(ev) { render(JSON.parse(ev.data)); };
            stream.onerror = function() {
                console.log('stream lost, retrying in 5s');
                stream.close();
                setTimeout(connectStream, 5000);
            };
        }

        fetch('/api/fleet')
            .then(function(r) { return r.json(); })
            .then(render)
            .catch(function(err) { console.error('fleet load failed', err); });
        connectStream();
    </script>
</body>
</html>`
